// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package thumber

// Wording holds the user-facing texts of the widget. An empty string or a
// nil YesFirst means "not set" and defers to the next source.
type Wording struct {
	Satisfied          string
	Yes                string
	No                 string
	Comment            string
	CommentPlaceholder string
	Submit             string
	Thanks             string
	Error              string

	// YesFirst orders the positive option before the negative one
	YesFirst *bool
}

// DefaultWording is used for every text neither the view options nor the
// host page provide.
var DefaultWording = Wording{
	Satisfied:          "Was this service useful?",
	Yes:                "Yes, thanks",
	No:                 "Not really",
	Comment:            "",
	CommentPlaceholder: "Please tell us why?",
	Submit:             "Send my feedback",
	Thanks:             "Thank you for your feedback",
	Error:              "Sorry, something went wrong",
	YesFirst:           Bool(true),
}

// WordingProvider is implemented by host pages that supply their own wording.
type WordingProvider interface {
	Wording() Wording
}

// Bool returns a pointer to b, for Wording.YesFirst
func Bool(b bool) *bool {
	return &b
}

// Or returns w with every unset field taken from fallback.
func (w Wording) Or(fallback Wording) Wording {
	w.Satisfied = or(w.Satisfied, fallback.Satisfied)
	w.Yes = or(w.Yes, fallback.Yes)
	w.No = or(w.No, fallback.No)
	w.Comment = or(w.Comment, fallback.Comment)
	w.CommentPlaceholder = or(w.CommentPlaceholder, fallback.CommentPlaceholder)
	w.Submit = or(w.Submit, fallback.Submit)
	w.Thanks = or(w.Thanks, fallback.Thanks)
	w.Error = or(w.Error, fallback.Error)
	if w.YesFirst == nil {
		w.YesFirst = fallback.YesFirst
	}
	return w
}

// yesFirst reports the option ordering, defaulting to yes first
func (w Wording) yesFirst() bool {
	return w.YesFirst == nil || *w.YesFirst
}

func or(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

// resolveWording applies the precedence view options > host page > defaults
func resolveWording(options Wording, host any) Wording {
	resolved := options
	if provider, ok := host.(WordingProvider); ok {
		resolved = resolved.Or(provider.Wording())
	}
	return resolved.Or(DefaultWording)
}
