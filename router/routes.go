// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// Routes is an http.ServeMux that remembers a name for each pattern, so a
// URL path can be mapped back to the page that serves it.
type Routes struct {
	mux      *http.ServeMux
	names    map[string]string
	patterns map[string]string
}

func NewRoutes() *Routes {
	return &Routes{
		mux:      http.NewServeMux(),
		names:    map[string]string{},
		patterns: map[string]string{},
	}
}

// Handle registers handler for pattern. An empty name registers an
// anonymous route that never resolves.
func (rt *Routes) Handle(pattern, name string, handler http.Handler) {
	if name != "" {
		if existing, ok := rt.patterns[name]; ok {
			panic(fmt.Sprintf("router: route name %q already used by %q", name, existing))
		}
		rt.names[pattern] = name
		rt.patterns[name] = pattern
	}
	rt.mux.Handle(pattern, handler)
}

// Resolve returns the name of the route a GET of path would be served by.
func (rt *Routes) Resolve(path string) (string, bool) {
	req := &http.Request{
		Method: http.MethodGet,
		URL:    &url.URL{Path: path},
		Header: http.Header{},
	}
	_, pattern := rt.mux.Handler(req)
	name, ok := rt.names[pattern]
	return name, ok
}

// Name returns the route name of a request being served by rt
func (rt *Routes) Name(r *http.Request) string {
	return rt.names[r.Pattern]
}

// Reverse builds the path of a named route, filling wildcards from params.
func (rt *Routes) Reverse(name string, params map[string]string) (string, error) {
	pattern, ok := rt.patterns[name]
	if !ok {
		return "", fmt.Errorf("no route named %q", name)
	}

	// Drop the method and host parts of the pattern
	if _, path, found := strings.Cut(pattern, " "); found {
		pattern = strings.TrimLeft(path, " ")
	}
	if i := strings.IndexByte(pattern, '/'); i > 0 {
		pattern = pattern[i:]
	}

	var b strings.Builder
	for {
		start := strings.IndexByte(pattern, '{')
		if start < 0 {
			b.WriteString(pattern)
			break
		}
		end := strings.IndexByte(pattern[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("route %q has a malformed pattern", name)
		}
		b.WriteString(pattern[:start])

		wildcard := pattern[start+1 : start+end]
		if wildcard != "$" {
			multi := strings.HasSuffix(wildcard, "...")
			wildcard = strings.TrimSuffix(wildcard, "...")
			value, ok := params[wildcard]
			if !ok {
				return "", fmt.Errorf("route %q needs parameter %q", name, wildcard)
			}
			if multi {
				b.WriteString((&url.URL{Path: value}).EscapedPath())
			} else {
				b.WriteString(url.PathEscape(value))
			}
		}
		pattern = pattern[start+end+1:]
	}

	return b.String(), nil
}

func (rt *Routes) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rt.mux.ServeHTTP(w, r)
}
