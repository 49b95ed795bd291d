// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package thumber

import (
	"net/url"
	"strings"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/models"
)

// Choice is one radio option of the satisfied question
type Choice struct {
	ID      string
	Value   string
	Label   string
	Checked bool
}

// Form is the widget form as seen by templates under "thumber_form".
type Form struct {
	Token              string
	SatisfiedLabel     string
	Choices            []Choice
	CommentLabel       string
	CommentPlaceholder string
	Comment            string
	Submit             string
	Errors             map[string][]string
}

// newForm builds an unbound form. Without JavaScript the token stays "sync"
// so a plain submission re-renders the page.
func newForm(wording Wording) *Form {
	yes := Choice{ID: "thumber-satisfied-yes", Value: models.SatisfiedTrue, Label: wording.Yes}
	no := Choice{ID: "thumber-satisfied-no", Value: models.SatisfiedFalse, Label: wording.No}

	choices := []Choice{yes, no}
	if !wording.yesFirst() {
		choices = []Choice{no, yes}
	}

	return &Form{
		Token:              models.TokenSync,
		SatisfiedLabel:     wording.Satisfied,
		Choices:            choices,
		CommentLabel:       wording.Comment,
		CommentPlaceholder: wording.CommentPlaceholder,
		Submit:             wording.Submit,
	}
}

// bind copies a rejected submission back into the form
func (f *Form) bind(values url.Values, errs map[string][]string) {
	satisfied := values.Get(models.FieldSatisfied)
	for i := range f.Choices {
		f.Choices[i].Checked = f.Choices[i].Value == satisfied
	}
	f.Comment = values.Get(models.FieldComment)
	f.Errors = errs
}

// submission is a validated widget POST
type submission struct {
	Satisfied bool
	Comment   *string
	ID        string
}

// parseSubmission validates the posted widget fields. satisfied is only
// required when creating; an amendment carries just the comment.
func parseSubmission(values url.Values) (*submission, error) {
	s := &submission{ID: strings.TrimSpace(values.Get(models.FieldID))}

	if comment := values.Get(models.FieldComment); comment != "" {
		s.Comment = &comment
	}

	if s.ID != "" {
		return s, nil
	}

	switch values.Get(models.FieldSatisfied) {
	case models.SatisfiedTrue:
		s.Satisfied = true
	case models.SatisfiedFalse:
		s.Satisfied = false
	case "":
		return nil, apperrors.NewValidationError("invalid feedback", map[string][]string{
			models.FieldSatisfied: {"This field is required."},
		})
	default:
		return nil, apperrors.NewValidationError("invalid feedback", map[string][]string{
			models.FieldSatisfied: {"Select a valid choice."},
		})
	}

	return s, nil
}
