// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package thumber

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/uktrade/dit-thumber/apperrors"
)

const (
	// DefaultFeedbackTemplate is the last entry of every fallback chain
	DefaultFeedbackTemplate = "thumber/feedback.html"

	// WidgetTemplate renders the form and the thanks message
	WidgetTemplate = "thumber/widget.html"

	// FeedbackBlock is the template name host pages use to place the widget
	FeedbackBlock = "thumber_feedback"
)

// ErrTemplateDoesNotExist is returned when none of the candidate names exist
var ErrTemplateDoesNotExist = errors.New("template does not exist")

//go:embed assets/templates
var embeddedTemplates embed.FS

//go:embed assets/static
var embeddedStatic embed.FS

// Static returns the widget's static files (thumber.js) rooted at the
// directory the router serves under /static/.
func Static() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "assets/static")
	if err != nil {
		panic(err)
	}
	return sub
}

// DefaultTemplates returns the built-in widget templates.
func DefaultTemplates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "assets/templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates is the set of page and widget templates, keyed by their path
// relative to the root of the layer that provided them.
type Templates struct {
	set   *template.Template
	names map[string]bool
}

// NewTemplates parses every .html file in the built-in templates and the
// given layers. Later layers override earlier ones on equal paths, and all
// layers override the built-in widget.
func NewTemplates(layers ...fs.FS) (*Templates, error) {
	sources := map[string]string{}
	for _, layer := range append([]fs.FS{DefaultTemplates()}, layers...) {
		if layer == nil {
			continue
		}
		err := fs.WalkDir(layer, ".", func(name string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || path.Ext(name) != ".html" {
				return nil
			}
			data, err := fs.ReadFile(layer, name)
			if err != nil {
				return err
			}
			sources[name] = string(data)
			return nil
		})
		if err != nil {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("failed to load templates: %v", err))
		}
	}

	names := make([]string, 0, len(sources))
	for name := range sources {
		names = append(names, name)
	}
	sort.Strings(names)

	t := &Templates{
		set:   template.New("thumber"),
		names: make(map[string]bool, len(names)),
	}
	for _, name := range names {
		if _, err := t.set.New(name).Parse(sources[name]); err != nil {
			return nil, apperrors.NewConfigurationError(fmt.Sprintf("failed to parse template %s: %v", name, err))
		}
		t.names[name] = true
	}

	return t, nil
}

// MustTemplates is NewTemplates that panics on error
func MustTemplates(layers ...fs.FS) *Templates {
	t, err := NewTemplates(layers...)
	if err != nil {
		panic(err)
	}
	return t
}

// Exists reports whether a template with the given name was loaded
func (t *Templates) Exists(name string) bool {
	return t.names[name]
}

// Select returns the first of names that exists.
func (t *Templates) Select(names ...string) (string, error) {
	for _, name := range names {
		if t.Exists(name) {
			return name, nil
		}
	}
	return "", apperrors.NewInternalError(
		fmt.Sprintf("none of the templates exist: %s", strings.Join(names, ", ")),
		ErrTemplateDoesNotExist,
	)
}

// Render executes the page template with FeedbackBlock bound to the widget
// template. An empty widget binds FeedbackBlock to nothing.
func (t *Templates) Render(w io.Writer, page, widget string, data any) error {
	set, err := t.set.Clone()
	if err != nil {
		return apperrors.NewInternalError("failed to clone templates", err)
	}

	block := ""
	if widget != "" {
		block = fmt.Sprintf("{{template %q .}}", widget)
	}
	if _, err := set.New(FeedbackBlock).Parse(block); err != nil {
		return apperrors.NewInternalError("failed to bind feedback template", err)
	}

	if err := set.ExecuteTemplate(w, page, data); err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("failed to render %s", page), err)
	}
	return nil
}

// FeedbackTemplateNames returns the widget template candidates for a view,
// most specific first: for "a:b:c" that is thumber/a/b/c/feedback.html,
// thumber/a/b/feedback.html, thumber/a/feedback.html and finally
// thumber/feedback.html.
func FeedbackTemplateNames(viewName string) []string {
	var parts []string
	for _, part := range strings.Split(viewName, ":") {
		if part != "" {
			parts = append(parts, part)
		}
	}

	names := make([]string, 0, len(parts)+1)
	for i := len(parts); i > 0; i-- {
		segments := append([]string{"thumber"}, parts[:i]...)
		names = append(names, path.Join(append(segments, "feedback.html")...))
	}
	return append(names, DefaultFeedbackTemplate)
}
