// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/google/uuid"

	"github.com/uktrade/dit-thumber/apperrors"
	"github.com/uktrade/dit-thumber/models"
)

const table = "content_feedback"

var columns = []any{"id", "created", "satisfied", "comment", "url", "view_name", "view_args", "session"}

// Store persists feedback records and answers aggregate queries over them.
type Store struct {
	db      *sql.DB
	dialect goqu.DialectWrapper
	now     func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithClock replaces time.Now for the created timestamp
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates a store for the given database type (sqlite or postgres).
func New(db *sql.DB, dbType string, opts ...Option) *Store {
	s := &Store{
		db:      db,
		dialect: goqu.Dialect(dialectFor(dbType)),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func dialectFor(dbType string) string {
	switch dbType {
	case "sqlite", "sqlite3":
		return "sqlite3"
	default:
		return "postgres"
	}
}

// Create inserts a new feedback record, assigning its ID and created time.
func (s *Store) Create(ctx context.Context, feedback *models.Feedback) error {
	if feedback == nil {
		return apperrors.NewInternalError("feedback is nil", errors.New("feedback is nil"))
	}

	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	feedback.Created = s.now().UTC()

	record := goqu.Record{
		"id":        feedback.ID,
		"created":   feedback.Created,
		"satisfied": feedback.Satisfied,
		"comment":   nullString(feedback.Comment),
		"url":       feedback.URL,
		"view_name": feedback.ViewName,
		"view_args": sql.NullString{String: feedback.ViewArgs, Valid: feedback.ViewArgs != ""},
		"session":   feedback.Session,
	}

	query, args, err := s.dialect.Insert(table).Rows(record).Prepared(true).ToSQL()
	if err != nil {
		return apperrors.NewInternalError("failed to build feedback insert query", err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return apperrors.NewInternalError("failed to create feedback", err)
	}

	return nil
}

// Get loads one feedback record by ID.
func (s *Store) Get(ctx context.Context, id string) (*models.Feedback, error) {
	query, args, err := s.dialect.From(table).
		Select(columns...).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback query", err)
	}

	feedback, err := scanFeedback(s.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFoundError("feedback not found")
	}
	if err != nil {
		return nil, apperrors.NewInternalError("failed to get feedback", err)
	}

	return feedback, nil
}

// UpdateComment loads the record, replaces its comment and saves it again.
// Concurrent amendments of the same record are not serialised: last write wins.
func (s *Store) UpdateComment(ctx context.Context, id string, comment *string) (*models.Feedback, error) {
	feedback, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	feedback.Comment = comment
	feedback.Created = s.now().UTC()

	query, args, err := s.dialect.Update(table).
		Set(goqu.Record{
			"comment": nullString(feedback.Comment),
			"created": feedback.Created,
		}).
		Where(goqu.C("id").Eq(id)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback update query", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to update feedback", err)
	}

	// The row can vanish between load and save when deleted externally
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return nil, apperrors.NewNotFoundError("feedback not found")
	}

	return feedback, nil
}

// Count returns the number of records matching the filter.
func (s *Store) Count(ctx context.Context, filter Filter) (int, error) {
	query, args, err := s.filtered(filter).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return 0, apperrors.NewInternalError("failed to build feedback count query", err)
	}

	var count int
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, apperrors.NewInternalError("failed to count feedback", err)
	}

	return count, nil
}

// List returns the records matching the filter, newest first.
func (s *Store) List(ctx context.Context, filter Filter) ([]models.Feedback, error) {
	query, args, err := s.filtered(filter).
		Select(columns...).
		Order(goqu.C("created").Desc(), goqu.C("id").Asc()).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build feedback list query", err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to list feedback", err)
	}
	defer rows.Close()

	feedback := []models.Feedback{}
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			return nil, apperrors.NewInternalError("failed to scan feedback", err)
		}
		feedback = append(feedback, *f)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewInternalError("failed to list feedback", err)
	}

	return feedback, nil
}

func (s *Store) filtered(filter Filter) *goqu.SelectDataset {
	ds := s.dialect.From(table)
	if where := filter.expressions(); len(where) > 0 {
		ds = ds.Where(where...)
	}
	return ds
}

type scanner interface {
	Scan(dest ...any) error
}

func scanFeedback(row scanner) (*models.Feedback, error) {
	var f models.Feedback
	var comment, viewArgs sql.NullString

	err := row.Scan(
		&f.ID,
		&f.Created,
		&f.Satisfied,
		&comment,
		&f.URL,
		&f.ViewName,
		&viewArgs,
		&f.Session,
	)
	if err != nil {
		return nil, err
	}

	if comment.Valid {
		c := comment.String
		f.Comment = &c
	}
	f.ViewArgs = viewArgs.String
	f.Created = f.Created.UTC()

	return &f, nil
}

func nullString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
