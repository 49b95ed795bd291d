// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the named HTTP routes of the thumber demo server.

# Route Registration

NewRouter creates a Routes with all endpoints:

	routes, err := router.NewRouter(db, cfg)

Routes wraps an http.ServeMux and records a name per pattern. Feedback is
stored under the name of the page the visitor came from:

	name, ok := routes.Resolve("/kwargs_example/foobar") // "examples:kwargs_example"
	path, err := routes.Reverse("examples:kwargs_example", map[string]string{"slug": "foobar"})

# Endpoints

Health:

	GET /health

Example pages (wrapped with the widget; GET, HEAD, POST, OPTIONS):

	/example                    examples:example
	/multiexample               examples:multiexample
	/bad_example                examples:bad_example
	/args_example/{arg}         examples:args_example
	/kwargs_example/{slug}      examples:kwargs_example
	/form                       examples:example_form
	/override_template_example  examples:override_template_example

Without the widget:

	/form_success               examples:example_form_success

Statistics:

	GET /thumber/averages       thumber:averages
	GET /thumber/feedback       thumber:feedback

Widget script:

	GET /static/thumber.js
*/
package router
