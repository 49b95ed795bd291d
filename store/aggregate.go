// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/models"
)

// satisfiedRate maps a boolean column to 1.0/0.0 on both PostgreSQL and SQLite
const satisfiedRate = "CASE WHEN satisfied THEN 1.0 ELSE 0.0 END"

// AverageForViews returns the share of satisfied feedback per view name for
// the records matching filter, ordered by view name.
func (s *Store) AverageForViews(ctx context.Context, filter Filter) ([]models.ViewAverage, error) {
	query, args, err := s.filtered(filter).
		Select(
			goqu.C("view_name"),
			goqu.AVG(goqu.L(satisfiedRate)).As("avg"),
			goqu.COUNT(goqu.Star()).As("count"),
		).
		GroupBy(goqu.C("view_name")).
		Order(goqu.C("view_name").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback average query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to average feedback", err)
	}
	defer rows.Close()

	averages := []models.ViewAverage{}
	for rows.Next() {
		var avg models.ViewAverage
		if err := rows.Scan(&avg.ViewName, &avg.Average, &avg.Count); err != nil {
			return nil, apperrors.NewInternalError("failed to scan feedback average", err)
		}
		averages = append(averages, avg)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to average feedback", err)
	}

	return averages, nil
}
