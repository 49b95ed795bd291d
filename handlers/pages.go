// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"embed"
	"io/fs"
	"net/http"
	"strings"

	"github.com/uktrade/dit-thumber/logging"
	"github.com/uktrade/dit-thumber/middleware"
	"github.com/uktrade/dit-thumber/thumber"
)

//go:embed templates
var embeddedTemplates embed.FS

// Templates returns the example page templates
func Templates() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}
	return sub
}

// TemplatePage renders the first existing of Names. Params names path
// wildcards copied into the template data.
type TemplatePage struct {
	Names  []string
	Data   map[string]any
	Params []string
}

func (p TemplatePage) TemplateNames(r *http.Request) []string {
	return p.Names
}

func (p TemplatePage) ContextData(r *http.Request) (map[string]any, error) {
	data := make(map[string]any, len(p.Data)+len(p.Params))
	for k, v := range p.Data {
		data[k] = v
	}
	for _, name := range p.Params {
		data[name] = r.PathValue(name)
	}
	return data, nil
}

// ExamplePage is a page that embeds the widget
func ExamplePage() TemplatePage {
	return TemplatePage{
		Names: []string{"example.html"},
		Data:  map[string]any{"example_key": "Example value"},
	}
}

// MultiExamplePage lists a missing template before the real one
func MultiExamplePage() TemplatePage {
	return TemplatePage{Names: []string{"non_existant.html", "example.html"}}
}

// BadExamplePage renders a template without the widget block
func BadExamplePage() TemplatePage {
	return TemplatePage{Names: []string{"bad_example.html"}}
}

// ArgsExamplePage exposes its {arg} path parameter
func ArgsExamplePage() TemplatePage {
	return TemplatePage{Names: []string{"example.html"}, Params: []string{"arg"}}
}

// KwargsExamplePage exposes its {slug} path parameter
func KwargsExamplePage() TemplatePage {
	return TemplatePage{Names: []string{"example.html"}, Params: []string{"slug"}}
}

// OverrideTemplatePage supplies its own question; the router overrides the
// submit button per view.
type OverrideTemplatePage struct {
	TemplatePage
}

func NewOverrideTemplatePage() OverrideTemplatePage {
	return OverrideTemplatePage{TemplatePage: ExamplePage()}
}

func (OverrideTemplatePage) Wording() thumber.Wording {
	return thumber.Wording{Satisfied: "Did you find what you were looking for?"}
}

// ExampleForm is the form shown on the form page
type ExampleForm struct {
	CharField string
	Errors    []string
}

// FormPage shows a form with its own POST handling next to the widget.
type FormPage struct {
	successURL string
}

func NewFormPage(successURL string) *FormPage {
	return &FormPage{successURL: successURL}
}

func (p *FormPage) TemplateNames(r *http.Request) []string {
	return []string{"example.html"}
}

func (p *FormPage) ContextData(r *http.Request) (map[string]any, error) {
	return map[string]any{"form": ExampleForm{}}, nil
}

// Post handles the page's own form: valid submissions redirect to the
// success page, invalid ones re-render the form and the widget.
func (p *FormPage) Post(w http.ResponseWriter, r *http.Request, page thumber.Renderer) {
	form := ExampleForm{CharField: strings.TrimSpace(r.PostFormValue("char_field"))}
	if form.CharField == "" {
		form.Errors = []string{"This field is required."}
		page.Render(w, r, http.StatusOK, map[string]any{"form": form})
		return
	}

	http.Redirect(w, r, p.successURL, http.StatusFound)
}

// PageHandler renders a page without the feedback widget
func PageHandler(templates *thumber.Templates, page thumber.Page) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := page.ContextData(r)
		if err != nil {
			logging.FromContext(r.Context()).Error().Err(err).Msg("failed to build page data")
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
			return
		}
		render(w, r, templates, http.StatusOK, page.TemplateNames(r), data)
	}
}

// FormSuccessPage is shown after the example form is submitted
func FormSuccessPage() TemplatePage {
	return TemplatePage{
		Names: []string{"example.html"},
		Data:  map[string]any{"example_key": "Form submitted"},
	}
}

func render(w http.ResponseWriter, r *http.Request, templates *thumber.Templates, status int, names []string, data map[string]any) {
	name, err := templates.Select(names...)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to select template")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	var buf bytes.Buffer
	if err := templates.Render(&buf, name, "", data); err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Str("template", name).Msg("failed to render page")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to render page")
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
