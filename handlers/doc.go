// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the example host pages and the feedback
statistics endpoints.

# Example Pages

Pages implement thumber.Page and are wrapped by the router:

  - TemplatePage: renders the first existing template with fixed data and
    selected path parameters (ExamplePage, MultiExamplePage, BadExamplePage,
    ArgsExamplePage, KwargsExamplePage, FormSuccessPage)
  - OverrideTemplatePage: supplies its own satisfied question
  - FormPage: a form that posts to its own URL and redirects on success

PageHandler renders a page without the widget. Page templates are embedded
and returned by Templates.

# Statistics

StatsHandler is created with the database and config like every handler:

	statsHandler := handlers.NewStatsHandler(db, cfg)

	GET /thumber/averages → GetAverages (share satisfied and count per view)
	GET /thumber/feedback → ListFeedback (records, newest first)

Both accept the same query parameters:

	view       exact view name, repeatable
	prefix     namespace, matches view names starting with "<prefix>:"
	since      RFC 3339, inclusive
	until      RFC 3339, exclusive
	satisfied  true or false

Averages are ordered by view name:

	{"averages": [{"view_name": "examples:example", "avg": 0.75, "count": 4}]}
*/
package handlers
