// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package thumber

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/models"
	"github.com/uktrade/dit-thumber/session"
)

// DefaultScriptURL is where the router serves thumber.js
const DefaultScriptURL = "/static/thumber.js"

// Page is a host page handler that renders a template.
type Page interface {
	// TemplateNames lists the page template candidates, first existing wins
	TemplateNames(r *http.Request) []string

	// ContextData returns the page's own template data
	ContextData(r *http.Request) (map[string]any, error)
}

// PostHandler is implemented by host pages that accept their own POSTs.
// page renders the host again with the widget, for example to show form
// errors.
type PostHandler interface {
	Post(w http.ResponseWriter, r *http.Request, page Renderer)
}

// Renderer renders a wrapped page. data is merged over the host page's
// own context data.
type Renderer interface {
	Render(w http.ResponseWriter, r *http.Request, status int, data map[string]any)
}

// Resolver maps URL paths and requests to route names such as
// "examples:example".
type Resolver interface {
	Resolve(path string) (string, bool)
	Name(r *http.Request) string
}

// Store persists feedback records.
type Store interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	UpdateComment(ctx context.Context, id string, comment *string) (*models.Feedback, error)
}

// Config holds what every wrapped page shares.
type Config struct {
	Store     Store
	Resolver  Resolver
	Templates *Templates
	Sessions  *session.Manager

	// ScriptURL is exposed to templates as thumber_script
	ScriptURL string
}

// Widget wraps host pages with the feedback widget.
type Widget struct {
	store     Store
	resolver  Resolver
	templates *Templates
	sessions  *session.Manager
	scriptURL string
}

// New validates cfg and returns a Widget. Templates default to the
// built-in widget only and Sessions to the default cookie name.
func New(cfg Config) (*Widget, error) {
	if cfg.Store == nil {
		return nil, apperrors.NewConfigurationError("a feedback store is required")
	}
	if cfg.Resolver == nil {
		return nil, apperrors.NewConfigurationError("a route resolver is required")
	}

	if cfg.Templates == nil {
		t, err := NewTemplates()
		if err != nil {
			return nil, err
		}
		cfg.Templates = t
	}
	if cfg.Sessions == nil {
		cfg.Sessions = session.NewManager("")
	}
	if cfg.ScriptURL == "" {
		cfg.ScriptURL = DefaultScriptURL
	}

	return &Widget{
		store:     cfg.Store,
		resolver:  cfg.Resolver,
		templates: cfg.Templates,
		sessions:  cfg.Sessions,
		scriptURL: cfg.ScriptURL,
	}, nil
}

// Option configures one wrapped view
type Option func(*viewOptions)

type viewOptions struct {
	wording           Wording
	feedbackTemplates func(viewName string) []string
}

// WithWording overrides wording for one view. Only the fields set here
// take precedence over the host page and the defaults.
func WithWording(w Wording) Option {
	return func(o *viewOptions) {
		o.wording = w.Or(o.wording)
	}
}

// WithFeedbackTemplates replaces the widget template candidates
func WithFeedbackTemplates(names func(viewName string) []string) Option {
	return func(o *viewOptions) {
		o.feedbackTemplates = names
	}
}

// View is a host page wrapped with the feedback widget. It answers GET,
// HEAD and OPTIONS like the host, captures widget POSTs itself and hands
// every other POST to the host.
type View struct {
	page              Page
	poster            PostHandler
	wording           Wording
	feedbackTemplates func(viewName string) []string
	widget            *Widget
}

// Wrap composes host with the widget. host must be a value implementing
// Page; functions and anything else are rejected with a configuration error.
func (wg *Widget) Wrap(host any, opts ...Option) (*View, error) {
	if host == nil {
		return nil, apperrors.NewConfigurationError("only page handler types can be wrapped with thumber feedback: got nil")
	}
	if reflect.TypeOf(host).Kind() == reflect.Func {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf(
			"only page handler types can be wrapped with thumber feedback: %T is a function", host))
	}
	page, ok := host.(Page)
	if !ok {
		return nil, apperrors.NewConfigurationError(fmt.Sprintf(
			"only page handler types can be wrapped with thumber feedback: %T does not render a template", host))
	}

	o := viewOptions{feedbackTemplates: FeedbackTemplateNames}
	for _, opt := range opts {
		opt(&o)
	}

	v := &View{
		page:              page,
		wording:           resolveWording(o.wording, host),
		feedbackTemplates: o.feedbackTemplates,
		widget:            wg,
	}
	if poster, ok := host.(PostHandler); ok {
		v.poster = poster
	}
	return v, nil
}

// MustWrap is Wrap that panics on error, for route tables
func (wg *Widget) MustWrap(host any, opts ...Option) *View {
	v, err := wg.Wrap(host, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Wording returns the resolved wording of the view
func (v *View) Wording() Wording {
	return v.wording
}
