// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Each request gets a zerolog logger carrying method, path and remote address,
stored on the request context (see logging.FromContext). Completion is logged
with the response status and duration_ms.

# CORS Middleware

Allow the widget script on embedding sites to post feedback:

	server := http.Server{
		Handler: middleware.CORS(mux),
	}

Preflight requests (OPTIONS with Access-Control-Request-Method) are answered
directly. Plain OPTIONS requests reach the wrapped handler.

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

# Client IP Extraction

Get the original client IP (handles X-Forwarded-For, X-Real-IP):

	ip := middleware.GetClientIP(r)
*/
package middleware
