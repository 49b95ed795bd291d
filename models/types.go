package models

import (
	"fmt"
	"time"
)

// Submission marker values
const (
	TokenSync = "sync"
	TokenAjax = "ajax"
)

// Form field names posted by the widget
const (
	FieldSatisfied = "satisfied"
	FieldComment   = "comment"
	FieldToken     = "thumber_token"
	FieldID        = "id"
)

// Encoded values of the satisfied field
const (
	SatisfiedTrue  = "True"
	SatisfiedFalse = "False"
)

// Domain types

// Feedback is one submission of the widget. Created is refreshed on every save.
type Feedback struct {
	ID        string    `json:"id" db:"id"`
	Created   time.Time `json:"created" db:"created"`
	Satisfied bool      `json:"satisfied" db:"satisfied"`
	Comment   *string   `json:"comment,omitempty" db:"comment"`
	URL       string    `json:"url" db:"url"`
	ViewName  string    `json:"view_name" db:"view_name"`
	ViewArgs  string    `json:"view_args" db:"view_args"`
	Session   string    `json:"-" db:"session"`
}

func (f Feedback) String() string {
	tick := "✘"
	if f.Satisfied {
		tick = "✓"
	}
	return fmt.Sprintf("%s - %s", tick, f.Created.Format(time.RFC3339))
}

// ViewArgs is the serialized form of the path parameters a page was rendered with
type ViewArgs struct {
	Args   []string          `json:"args"`
	Kwargs map[string]string `json:"kwargs"`
}

// ViewAverage is one row of the per-view satisfaction aggregate
type ViewAverage struct {
	ViewName string  `json:"view_name"`
	Average  float64 `json:"avg"`
	Count    int     `json:"count"`
}

// Response types

type FeedbackAck struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type ValidationErrorResponse struct {
	Success bool                `json:"success"`
	Errors  map[string][]string `json:"errors"`
}

type AveragesResponse struct {
	Averages []ViewAverage `json:"averages"`
}

type FeedbackListResponse struct {
	Feedback []Feedback `json:"feedback"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
