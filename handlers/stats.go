// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/cliparse"
	"github.com/uktrade/dit-thumber/logging"
	"github.com/uktrade/dit-thumber/middleware"
	"github.com/uktrade/dit-thumber/models"
	"github.com/uktrade/dit-thumber/store"
)

type StatsHandler struct {
	store *store.Store
}

func NewStatsHandler(db *sql.DB, cfg cliparse.Config) *StatsHandler {
	return &StatsHandler{store: store.New(db, cfg.DatabaseType)}
}

// GetAverages handles GET /thumber/averages
// Returns the share of satisfied answers and the answer count per view
func (h *StatsHandler) GetAverages(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	averages, err := h.store.AverageForViews(r.Context(), filter)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to aggregate feedback")
		middleware.ErrorResponse(w, apperrors.HTTPStatus(err), "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.AveragesResponse{Averages: averages})
}

// ListFeedback handles GET /thumber/feedback
// Returns the matching records, newest first
func (h *StatsHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r.URL.Query())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	feedback, err := h.store.List(r.Context(), filter)
	if err != nil {
		logging.FromContext(r.Context()).Error().Err(err).Msg("failed to list feedback")
		middleware.ErrorResponse(w, apperrors.HTTPStatus(err), "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.FeedbackListResponse{Feedback: feedback})
}

// parseFilter reads view (repeatable), prefix, since, until and satisfied
func parseFilter(query url.Values) (store.Filter, error) {
	filter := store.Filter{
		ViewNames: query["view"],
		Namespace: query.Get("prefix"),
	}

	var err error
	if filter.Since, err = parseTime(query, "since"); err != nil {
		return filter, err
	}
	if filter.Until, err = parseTime(query, "until"); err != nil {
		return filter, err
	}

	if raw := query.Get("satisfied"); raw != "" {
		satisfied, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, apperrors.NewValidationError("satisfied must be a boolean", map[string][]string{
				"satisfied": {"Enter a valid boolean."},
			})
		}
		filter.Satisfied = &satisfied
	}

	return filter, nil
}

func parseTime(query url.Values, key string) (time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError(key+" must be an RFC 3339 timestamp", map[string][]string{
			key: {"Enter a valid date/time."},
		})
	}
	return t.UTC(), nil
}
