// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists feedback records in the content_feedback table.

# Records

	s := store.New(conn, cfg.DatabaseType)
	err := s.Create(ctx, &models.Feedback{...})      // assigns ID and Created
	f, err := s.UpdateComment(ctx, id, &comment)     // NOT_FOUND when missing

Queries are built with goqu for the postgres or sqlite3 dialect and always
run prepared. Driver errors are returned as apperrors INTERNAL errors.

# Aggregation

AverageForViews groups the records matching a Filter by view name:

	averages, err := s.AverageForViews(ctx, store.Filter{Namespace: "examples"})
	// [{examples:example 0.75 4} {examples:example_form 0.5 2}]

Rows are ordered by view name. An empty match yields an empty slice.
*/
package store
