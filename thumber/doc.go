// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package thumber adds a "was this page useful?" feedback widget to existing
page handlers.

# Wrapping Pages

A host page implements Page. Wrapping it yields an http.Handler that renders
the page with the widget and captures submissions:

	widget, err := thumber.New(thumber.Config{
		Store:     store.New(conn, cfg.DatabaseType),
		Resolver:  routes,
		Templates: templates,
	})
	view, err := widget.Wrap(handlers.ExamplePage(), thumber.WithWording(thumber.Wording{
		Submit: "Send feedback!",
	}))
	mux.Handle("/example", view)

Functions (including http.HandlerFunc) and values that do not implement Page
are rejected with a configuration error.

# Request Handling

	GET, HEAD        render the page, start a session when the request has none
	POST + marker    capture feedback (thumber_token present in the form)
	POST, no marker  the host's Post method, or 405 with Allow: GET, HEAD, OPTIONS
	OPTIONS          200 with Allow: GET, POST, HEAD, OPTIONS

A submission without an id creates a record for the page named by the
Referer header. A submission with an id replaces that record's comment.
thumber_token=sync re-renders the page with the thanks message; any other
value answers JSON:

	{"success": true, "id": "..."}
	{"success": false, "errors": {"satisfied": ["This field is required."]}}

A host's Post receives the view as a Renderer, so an invalid host form can
be shown again with the widget:

	page.Render(w, r, http.StatusOK, map[string]any{"form": form})

# Templates

Host templates place the widget with

	{{template "thumber_feedback" .}}

The widget template is the first existing of FeedbackTemplateNames(view),
e.g. for "examples:example" thumber/examples/example/feedback.html, then
thumber/examples/feedback.html, then the built-in thumber/feedback.html.

# Wording

Each text is taken from WithWording, then the host's Wording method, then
DefaultWording.
*/
package thumber
