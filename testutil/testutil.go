// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/uktrade/dit-thumber/cliparse"
	"github.com/uktrade/dit-thumber/db"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(cliparse.DatabaseSQLite, ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3318,
		DatabaseURL:   ":memory:",
		DatabaseType:  cliparse.DatabaseSQLite,
		SessionCookie: "sessionid",
		Env:           "development",
		LogLevel:      "disabled",
	}
}

// Templates returns application templates mirroring the example pages: a page
// that embeds the widget, one that does not, and widget overrides for the
// "examples" namespace and for one specific view.
func Templates() fstest.MapFS {
	return fstest.MapFS{
		"example.html": {Data: []byte(
			`<h1>Example Template!</h1>{{with .example_key}}<p>{{.}}</p>{{end}}{{template "thumber_feedback" .}}`,
		)},
		"bad_example.html": {Data: []byte(
			`<h1>Bad Example Template!</h1>`,
		)},
		"thumber/examples/feedback.html": {Data: []byte(
			`<p>test before form</p>{{template "thumber/widget.html" .}}<p>test after form</p>`,
		)},
		"thumber/examples/override_template_example/feedback.html": {Data: []byte(
			`<p>new test before form</p>{{template "thumber/widget.html" .}}<input type="reset" value="reset" />`,
		)},
	}
}

// PostForm creates a form-encoded POST request
func PostForm(path string, values url.Values, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// WithCookies copies the cookies set on a previous response onto req
func WithCookies(req *http.Request, w *httptest.ResponseRecorder) *http.Request {
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

// FindCookie returns the named cookie set on the response, if any
func FindCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
