// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package thumber

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/logging"
	"github.com/uktrade/dit-thumber/middleware"
	"github.com/uktrade/dit-thumber/models"
)

var (
	// allowedMethods is what a wrapped view answers
	allowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodHead, http.MethodOptions}

	// readOnlyMethods is what a host without its own POST handling answers
	readOnlyMethods = []string{http.MethodGet, http.MethodHead, http.MethodOptions}
)

// renderState selects what the widget shows
type renderState struct {
	submitted bool
	errors    map[string][]string
	data      map[string]any
}

// ServeHTTP dispatches on the method and, for POST, on the presence of the
// thumber_token marker.
func (v *View) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		v.widget.sessions.Ensure(w, r)
		v.render(w, r, http.StatusOK, renderState{})
	case http.MethodPost:
		v.post(w, r)
	case http.MethodOptions:
		w.Header().Set("Allow", strings.Join(allowedMethods, ", "))
		w.Header().Set("Content-Length", "0")
		w.WriteHeader(http.StatusOK)
	default:
		methodNotAllowed(w, r, allowedMethods)
	}
}

func (v *View) post(w http.ResponseWriter, r *http.Request) {
	parseErr := r.ParseForm()

	// Any POST without the marker belongs to the host page, whether or
	// not its body parsed
	if !r.PostForm.Has(models.FieldToken) {
		if v.poster != nil {
			v.poster.Post(w, r, v)
			return
		}
		methodNotAllowed(w, r, readOnlyMethods)
		return
	}
	if parseErr != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	sync := r.PostForm.Get(models.FieldToken) == models.TokenSync
	sessionID := v.widget.sessions.Ensure(w, r)

	var feedback *models.Feedback
	sub, err := parseSubmission(r.PostForm)
	if err == nil {
		if sub.ID != "" {
			feedback, err = v.widget.store.UpdateComment(r.Context(), sub.ID, sub.Comment)
		} else {
			feedback, err = v.create(r, sub, sessionID)
		}
	}
	if err != nil {
		v.fail(w, r, sync, err)
		return
	}

	logging.FromContext(r.Context()).Info().
		Str("feedback_id", feedback.ID).
		Str("view_name", feedback.ViewName).
		Bool("amended", sub.ID != "").
		Bool("sync", sync).
		Msg("feedback captured")

	if sync {
		v.render(w, r, http.StatusOK, renderState{submitted: true})
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FeedbackAck{Success: true, ID: feedback.ID})
}

// create records new feedback against the page named by the Referer.
func (v *View) create(r *http.Request, sub *submission, sessionID string) (*models.Feedback, error) {
	referer := r.Referer()
	if referer == "" {
		return nil, apperrors.NewValidationError("missing referer", map[string][]string{
			"referer": {"The Referer header is required."},
		})
	}

	u, err := url.Parse(referer)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid referer", map[string][]string{
			"referer": {"The Referer header is not a valid URL."},
		})
	}

	viewName, ok := v.widget.resolver.Resolve(u.Path)
	if !ok {
		return nil, apperrors.NewValidationError("unresolvable referer", map[string][]string{
			"referer": {"The Referer does not match any page."},
		})
	}

	feedback := &models.Feedback{
		Satisfied: sub.Satisfied,
		Comment:   sub.Comment,
		URL:       referer,
		ViewName:  viewName,
		ViewArgs:  viewArgs(r),
		Session:   sessionID,
	}
	if err := v.widget.store.Create(r.Context(), feedback); err != nil {
		return nil, err
	}

	return feedback, nil
}

func (v *View) fail(w http.ResponseWriter, r *http.Request, sync bool, err error) {
	logger := logging.FromContext(r.Context())

	switch apperrors.TypeOf(err) {
	case apperrors.ErrorTypeValidation:
		logger.Debug().Err(err).Msg("feedback rejected")
		if sync {
			v.render(w, r, http.StatusBadRequest, renderState{errors: apperrors.FieldErrors(err)})
			return
		}
		middleware.JSONResponse(w, http.StatusBadRequest, models.ValidationErrorResponse{
			Success: false,
			Errors:  apperrors.FieldErrors(err),
		})
	case apperrors.ErrorTypeNotFound:
		middleware.ErrorResponse(w, http.StatusNotFound, "Feedback not found")
	default:
		logger.Error().Err(err).Msg("failed to capture feedback")
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to save feedback")
	}
}

// Render shows the host page with a fresh widget, data overriding the
// host's context data.
func (v *View) Render(w http.ResponseWriter, r *http.Request, status int, data map[string]any) {
	v.render(w, r, status, renderState{data: data})
}

// render executes the host page with the widget bound into it.
func (v *View) render(w http.ResponseWriter, r *http.Request, status int, state renderState) {
	templates := v.widget.templates

	page, err := templates.Select(v.page.TemplateNames(r)...)
	if err != nil {
		v.renderFailed(w, r, err)
		return
	}

	widget, err := templates.Select(v.feedbackTemplates(v.widget.resolver.Name(r))...)
	if err != nil {
		v.renderFailed(w, r, err)
		return
	}

	hostData, err := v.page.ContextData(r)
	if err != nil {
		v.renderFailed(w, r, err)
		return
	}

	data := make(map[string]any, len(hostData)+len(state.data)+12)
	for k, val := range hostData {
		data[k] = val
	}
	for k, val := range state.data {
		data[k] = val
	}
	data["parent_template"] = page

	if state.submitted {
		data["thanks_message"] = v.wording.Thanks
	} else {
		form := newForm(v.wording)
		if state.errors != nil {
			form.bind(r.PostForm, state.errors)
		}
		data["thumber_form"] = form
		data["satisfied_wording"] = v.wording.Satisfied
		data["yes_wording"] = v.wording.Yes
		data["no_wording"] = v.wording.No
		data["comment_wording"] = v.wording.Comment
		data["comment_placeholder"] = v.wording.CommentPlaceholder
		data["first_option_yes"] = v.wording.yesFirst()
		data["submit_wording"] = v.wording.Submit
		data["thanks_message"] = v.wording.Thanks
		data["error_message"] = v.wording.Error
		data["thumber_script"] = v.widget.scriptURL
	}

	var buf bytes.Buffer
	if err := templates.Render(&buf, page, widget, data); err != nil {
		v.renderFailed(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

func (v *View) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	status := apperrors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to render page")
	}
	middleware.ErrorResponse(w, status, http.StatusText(status))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request, allowed []string) {
	logging.FromContext(r.Context()).Warn().
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not allowed")

	w.Header().Set("Allow", strings.Join(allowed, ", "))
	middleware.ErrorResponse(w, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// viewArgs encodes the path wildcards matched for this request
func viewArgs(r *http.Request) string {
	kwargs := map[string]string{}
	for _, name := range wildcards(r.Pattern) {
		kwargs[name] = r.PathValue(name)
	}

	data, err := json.Marshal(models.ViewArgs{Args: []string{}, Kwargs: kwargs})
	if err != nil {
		return ""
	}
	return string(data)
}

// wildcards returns the wildcard names of a ServeMux pattern
func wildcards(pattern string) []string {
	var names []string
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			return names
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return names
		}
		name := strings.TrimSuffix(pattern[start+1:start+end], "...")
		if name != "" && name != "$" {
			names = append(names, name)
		}
		pattern = pattern[start+end+1:]
	}
}
