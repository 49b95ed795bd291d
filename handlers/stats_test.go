// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uktrade/dit-thumber/models"
	"github.com/uktrade/dit-thumber/store"
	"github.com/uktrade/dit-thumber/testutil"
)

func seedFeedback(t *testing.T, s *store.Store, viewName string, satisfied bool) {
	t.Helper()
	err := s.Create(context.Background(), &models.Feedback{
		Satisfied: satisfied,
		URL:       "http://testserver/" + viewName,
		ViewName:  viewName,
		Session:   "session-1",
	})
	require.NoError(t, err)
}

func newStatsHandler(t *testing.T) *StatsHandler {
	t.Helper()
	db := testutil.SetupTestDB(t)
	handler := NewStatsHandler(db, testutil.GetTestConfig())

	seedFeedback(t, handler.store, "examples:example", false)
	seedFeedback(t, handler.store, "examples:example", true)
	seedFeedback(t, handler.store, "examples:example", true)
	seedFeedback(t, handler.store, "examples:example", true)
	seedFeedback(t, handler.store, "examples:example_form", true)
	seedFeedback(t, handler.store, "other:page", false)

	return handler
}

func TestGetAverages(t *testing.T) {
	handler := newStatsHandler(t)

	tests := []struct {
		name           string
		query          string
		expectedStatus int
		expected       []models.ViewAverage
	}{
		{
			name:           "all views ordered by name",
			expectedStatus: http.StatusOK,
			expected: []models.ViewAverage{
				{ViewName: "examples:example", Average: 0.75, Count: 4},
				{ViewName: "examples:example_form", Average: 1, Count: 1},
				{ViewName: "other:page", Average: 0, Count: 1},
			},
		},
		{
			name:           "single view",
			query:          "?view=examples:example",
			expectedStatus: http.StatusOK,
			expected: []models.ViewAverage{
				{ViewName: "examples:example", Average: 0.75, Count: 4},
			},
		},
		{
			name:           "several views",
			query:          "?view=examples:example_form&view=other:page",
			expectedStatus: http.StatusOK,
			expected: []models.ViewAverage{
				{ViewName: "examples:example_form", Average: 1, Count: 1},
				{ViewName: "other:page", Average: 0, Count: 1},
			},
		},
		{
			name:           "namespace",
			query:          "?prefix=other",
			expectedStatus: http.StatusOK,
			expected: []models.ViewAverage{
				{ViewName: "other:page", Average: 0, Count: 1},
			},
		},
		{
			name:           "future window is empty",
			query:          "?since=2999-01-01T00:00:00Z",
			expectedStatus: http.StatusOK,
			expected:       []models.ViewAverage{},
		},
		{
			name:           "satisfied only",
			query:          "?satisfied=false",
			expectedStatus: http.StatusOK,
			expected: []models.ViewAverage{
				{ViewName: "examples:example", Average: 0, Count: 1},
				{ViewName: "other:page", Average: 0, Count: 1},
			},
		},
		{
			name:           "invalid since",
			query:          "?since=yesterday",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid until",
			query:          "?until=2026-13-01",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "invalid satisfied",
			query:          "?satisfied=maybe",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/thumber/averages"+tt.query, nil)
			w := httptest.NewRecorder()

			handler.GetAverages(w, req)

			testutil.AssertStatus(t, w, tt.expectedStatus)
			if tt.expectedStatus != http.StatusOK {
				return
			}

			var resp models.AveragesResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tt.expected, resp.Averages)
		})
	}
}

func TestListFeedback(t *testing.T) {
	handler := newStatsHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/thumber/feedback?view=examples:example&satisfied=true", nil)
	w := httptest.NewRecorder()
	handler.ListFeedback(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.NotContains(t, w.Body.String(), "session-1")

	var resp models.FeedbackListResponse
	testutil.AssertJSON(t, w, &resp)
	require.Len(t, resp.Feedback, 3)
	for _, f := range resp.Feedback {
		assert.Equal(t, "examples:example", f.ViewName)
		assert.True(t, f.Satisfied)
	}
}

func TestStats_DatabaseError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	cfg.DatabaseType = "postgres"
	handler := NewStatsHandler(db, cfg)

	mock.ExpectQuery(`SELECT .* FROM "content_feedback"`).WillReturnError(errors.New("connection refused"))

	w := httptest.NewRecorder()
	handler.GetAverages(w, httptest.NewRequest(http.MethodGet, "/thumber/averages", nil))

	testutil.AssertStatus(t, w, http.StatusInternalServerError)
	assert.True(t, strings.Contains(w.Body.String(), "Database error"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParseFilter(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet,
		"/?view=a&view=b&prefix=examples&since=2026-10-01T00:00:00Z&until=2026-10-19T12:00:00%2B02:00&satisfied=True", nil)

	filter, err := parseFilter(req.URL.Query())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, filter.ViewNames)
	assert.Equal(t, "examples", filter.Namespace)
	assert.True(t, filter.Since.Equal(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, filter.Until.Equal(time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)))
	require.NotNil(t, filter.Satisfied)
	assert.True(t, *filter.Satisfied)
}
