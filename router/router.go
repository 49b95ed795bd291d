// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"io/fs"
	"net/http"
	"os"

	"github.com/uktrade/dit-thumber/cliparse"
	"github.com/uktrade/dit-thumber/handlers"
	"github.com/uktrade/dit-thumber/middleware"
	"github.com/uktrade/dit-thumber/session"
	"github.com/uktrade/dit-thumber/store"
	"github.com/uktrade/dit-thumber/thumber"
)

func NewRouter(db *sql.DB, cfg cliparse.Config) (*Routes, error) {
	routes := NewRoutes()

	// Templates: examples, then the configured directory
	layers := []fs.FS{handlers.Templates()}
	if cfg.TemplateDir != "" {
		layers = append(layers, os.DirFS(cfg.TemplateDir))
	}
	templates, err := thumber.NewTemplates(layers...)
	if err != nil {
		return nil, err
	}

	// Initialize handlers
	widget, err := thumber.New(thumber.Config{
		Store:     store.New(db, cfg.DatabaseType),
		Resolver:  routes,
		Templates: templates,
		Sessions:  session.NewManager(cfg.SessionCookie),
	})
	if err != nil {
		return nil, err
	}
	statsHandler := handlers.NewStatsHandler(db, cfg)

	wrap := func(host any, opts ...thumber.Option) http.HandlerFunc {
		return middleware.WithLogging(widget.MustWrap(host, opts...).ServeHTTP)
	}

	// Health check
	routes.Handle("GET /health", "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}))

	// Example pages with the widget
	routes.Handle("/example", "examples:example", wrap(handlers.ExamplePage()))
	routes.Handle("/multiexample", "examples:multiexample", wrap(handlers.MultiExamplePage()))
	routes.Handle("/bad_example", "examples:bad_example", wrap(handlers.BadExamplePage()))
	routes.Handle("/args_example/{arg}", "examples:args_example", wrap(handlers.ArgsExamplePage()))
	routes.Handle("/kwargs_example/{slug}", "examples:kwargs_example", wrap(handlers.KwargsExamplePage()))
	routes.Handle("/override_template_example", "examples:override_template_example", wrap(
		handlers.NewOverrideTemplatePage(),
		thumber.WithWording(thumber.Wording{Submit: "Send feedback!"}),
	))

	// Form page posting to itself, success page without the widget
	routes.Handle("/form_success", "examples:example_form_success",
		middleware.WithLogging(handlers.PageHandler(templates, handlers.FormSuccessPage())))
	successURL, err := routes.Reverse("examples:example_form_success", nil)
	if err != nil {
		return nil, err
	}
	routes.Handle("/form", "examples:example_form", wrap(handlers.NewFormPage(successURL)))

	// Statistics
	routes.Handle("GET /thumber/averages", "thumber:averages", middleware.WithLogging(statsHandler.GetAverages))
	routes.Handle("GET /thumber/feedback", "thumber:feedback", middleware.WithLogging(statsHandler.ListFeedback))

	// Widget script
	routes.Handle("GET /static/", "", http.StripPrefix("/static/", http.FileServerFS(thumber.Static())))

	// Root endpoint
	routes.Handle("GET /{$}", "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("dit-thumber"))
	}))

	return routes, nil
}
