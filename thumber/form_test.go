package thumber

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktrade/dit-thumber/apperrors"
)

func TestParseSubmission(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		sub, err := parseSubmission(url.Values{"satisfied": {"True"}, "comment": {"hello"}})
		require.NoError(t, err)
		assert.True(t, sub.Satisfied)
		require.NotNil(t, sub.Comment)
		assert.Equal(t, "hello", *sub.Comment)
		assert.Empty(t, sub.ID)
	})

	t.Run("empty comment is no comment", func(t *testing.T) {
		sub, err := parseSubmission(url.Values{"satisfied": {"False"}, "comment": {""}})
		require.NoError(t, err)
		assert.False(t, sub.Satisfied)
		assert.Nil(t, sub.Comment)
	})

	t.Run("amend does not need satisfied", func(t *testing.T) {
		sub, err := parseSubmission(url.Values{"id": {" abc "}, "comment": {"later"}})
		require.NoError(t, err)
		assert.Equal(t, "abc", sub.ID)
		assert.Equal(t, "later", *sub.Comment)
	})

	t.Run("lowercase booleans are not choices", func(t *testing.T) {
		_, err := parseSubmission(url.Values{"satisfied": {"true"}})
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, []string{"Select a valid choice."}, apperrors.FieldErrors(err)["satisfied"])
	})
}

func TestNewForm_ChoiceOrder(t *testing.T) {
	form := newForm(DefaultWording)
	require.Len(t, form.Choices, 2)
	assert.Equal(t, "True", form.Choices[0].Value)
	assert.Equal(t, "Yes, thanks", form.Choices[0].Label)
	assert.Equal(t, "sync", form.Token)

	form = newForm(Wording{YesFirst: Bool(false)}.Or(DefaultWording))
	assert.Equal(t, "False", form.Choices[0].Value)
	assert.Equal(t, "Not really", form.Choices[0].Label)
}

func TestForm_Bind(t *testing.T) {
	form := newForm(DefaultWording)
	form.bind(url.Values{"satisfied": {"False"}, "comment": {"draft"}}, map[string][]string{"referer": {"missing"}})

	assert.False(t, form.Choices[0].Checked)
	assert.True(t, form.Choices[1].Checked)
	assert.Equal(t, "draft", form.Comment)
	assert.Equal(t, []string{"missing"}, form.Errors["referer"])
}

func TestWildcards(t *testing.T) {
	testCases := []struct {
		pattern  string
		expected []string
	}{
		{"", nil},
		{"/example", nil},
		{"/args_example/{arg}", []string{"arg"}},
		{"GET /kwargs_example/{slug}/{page}", []string{"slug", "page"}},
		{"/files/{path...}", []string{"path"}},
		{"/{$}", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.pattern, func(t *testing.T) {
			assert.Equal(t, tc.expected, wildcards(tc.pattern))
		})
	}
}

func TestWording_Or(t *testing.T) {
	w := Wording{Submit: "Send feedback!"}.Or(Wording{Submit: "ignored", Yes: "Yep"}).Or(DefaultWording)

	assert.Equal(t, "Send feedback!", w.Submit)
	assert.Equal(t, "Yep", w.Yes)
	assert.Equal(t, "Not really", w.No)
	assert.True(t, w.yesFirst())
}
