// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the feedback record and the request/response shapes.

# Domain Types

  - Feedback: one widget submission (satisfied, optional comment, url,
    view_name, view_args, session)
  - ViewArgs: JSON shape stored in Feedback.ViewArgs
  - ViewAverage: per-view mean satisfaction and record count

# Response Types

  - FeedbackAck: success, id
  - ValidationErrorResponse: success=false, per-field errors
  - AveragesResponse: averages
  - FeedbackListResponse: feedback (session omitted)
  - ErrorResponse: error, message

# Form Fields

The widget posts form-encoded data:

	satisfied      "True" or "False"
	comment        optional free text
	thumber_token  "sync" for a full page re-render, anything else for JSON
	id             record id, only when amending a comment
*/
package models
