// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
)

// Filter selects a subset of feedback records. Zero-valued fields are ignored
// and the remaining conditions are AND-ed together.
type Filter struct {
	// ViewNames restricts to exact view names
	ViewNames []string
	// Namespace restricts to view names under "<Namespace>:"
	Namespace string
	// Since and Until bound the created timestamp: Since <= created < Until
	Since     time.Time
	Until     time.Time
	Session   string
	Satisfied *bool
}

func (f Filter) expressions() []exp.Expression {
	var where []exp.Expression

	if len(f.ViewNames) > 0 {
		where = append(where, goqu.C("view_name").In(f.ViewNames))
	}
	if f.Namespace != "" {
		prefix := f.Namespace + ":"
		where = append(where, goqu.Func("SUBSTR", goqu.C("view_name"), 1, len(prefix)).Eq(prefix))
	}
	if !f.Since.IsZero() {
		where = append(where, goqu.C("created").Gte(f.Since.UTC()))
	}
	if !f.Until.IsZero() {
		where = append(where, goqu.C("created").Lt(f.Until.UTC()))
	}
	if f.Session != "" {
		where = append(where, goqu.C("session").Eq(f.Session))
	}
	if f.Satisfied != nil {
		where = append(where, goqu.C("satisfied").Eq(*f.Satisfied))
	}

	return where
}
