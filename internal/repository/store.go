package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

var ErrNotFound = errors.New("not found")

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type scanner interface {
	Scan(dest ...any) error
}

// KeyedStore is the CRUD contract shared by every record kind. Records are
// keyed by an int64 id; inserting an existing id replaces the stored row.
type KeyedStore[T any] interface {
	InsertOrReplace(ctx context.Context, record T) error
	DeleteByID(ctx context.Context, id int64) error
	Update(ctx context.Context, record T) error
	GetByID(ctx context.Context, id int64) (T, error)
	ListAll(ctx context.Context) ([]T, error)
}

// UpdatePolicy decides what Update does when no row has the record's id.
type UpdatePolicy int

const (
	// UpdateIgnoreMissing silently does nothing.
	UpdateIgnoreMissing UpdatePolicy = iota
	// UpdateReportMissing returns ErrNotFound.
	UpdateReportMissing
)

type Option func(*storeOptions)

type storeOptions struct {
	updatePolicy UpdatePolicy
}

func WithUpdatePolicy(p UpdatePolicy) Option {
	return func(o *storeOptions) {
		o.updatePolicy = p
	}
}

// table maps one record kind onto its SQL table. columns excludes the id.
type table[T any] struct {
	name    string
	columns []string
	autoID  bool
	id      func(T) int64
	values  func(T) []any
	scan    func(scanner) (T, error)
}

type sqlStore[T any] struct {
	db     dbtx
	t      table[T]
	policy UpdatePolicy

	upsertSQL     string
	insertAutoSQL string
	updateSQL     string
	deleteSQL     string
	selectSQL     string
	getSQL        string
}

func newSQLStore[T any](db dbtx, t table[T], opts ...Option) *sqlStore[T] {
	var o storeOptions
	for _, opt := range opts {
		opt(&o)
	}

	cols := strings.Join(t.columns, ", ")
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(t.columns)), ", ")
	sets := make([]string, len(t.columns))
	excluded := make([]string, len(t.columns))
	for i, c := range t.columns {
		sets[i] = c + " = ?"
		excluded[i] = c + " = excluded." + c
	}

	return &sqlStore[T]{
		db:     db,
		t:      t,
		policy: o.updatePolicy,
		upsertSQL: fmt.Sprintf(
			`INSERT INTO %s (id, %s) VALUES (?, %s) ON CONFLICT(id) DO UPDATE SET %s`,
			t.name, cols, placeholders, strings.Join(excluded, ", "),
		),
		insertAutoSQL: fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`, t.name, cols, placeholders),
		updateSQL:     fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, t.name, strings.Join(sets, ", ")),
		deleteSQL:     fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, t.name),
		selectSQL:     fmt.Sprintf(`SELECT id, %s FROM %s ORDER BY id`, cols, t.name),
		getSQL:        fmt.Sprintf(`SELECT id, %s FROM %s WHERE id = ?`, cols, t.name),
	}
}

func (s *sqlStore[T]) InsertOrReplace(ctx context.Context, record T) error {
	id := s.t.id(record)
	if s.t.autoID && id == 0 {
		if _, err := s.db.ExecContext(ctx, s.insertAutoSQL, s.t.values(record)...); err != nil {
			return fmt.Errorf("insert %s: %w", s.t.name, err)
		}
		return nil
	}

	args := append([]any{id}, s.t.values(record)...)
	if _, err := s.db.ExecContext(ctx, s.upsertSQL, args...); err != nil {
		return fmt.Errorf("upsert %s: %w", s.t.name, err)
	}
	return nil
}

func (s *sqlStore[T]) DeleteByID(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, s.deleteSQL, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.t.name, err)
	}
	return nil
}

func (s *sqlStore[T]) Update(ctx context.Context, record T) error {
	id := s.t.id(record)
	args := append(s.t.values(record), id)
	res, err := s.db.ExecContext(ctx, s.updateSQL, args...)
	if err != nil {
		return fmt.Errorf("update %s: %w", s.t.name, err)
	}
	if s.policy != UpdateReportMissing {
		return nil
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update %s: %w", s.t.name, err)
	}
	if n == 0 {
		return fmt.Errorf("update %s %d: %w", s.t.name, id, ErrNotFound)
	}
	return nil
}

func (s *sqlStore[T]) GetByID(ctx context.Context, id int64) (T, error) {
	rec, err := s.t.scan(s.db.QueryRowContext(ctx, s.getSQL, id))
	if err != nil {
		var zero T
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("get %s %d: %w", s.t.name, id, ErrNotFound)
		}
		return zero, fmt.Errorf("get %s: %w", s.t.name, err)
	}
	return rec, nil
}

func (s *sqlStore[T]) ListAll(ctx context.Context) ([]T, error) {
	rows, err := s.db.QueryContext(ctx, s.selectSQL)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", s.t.name, err)
	}
	defer rows.Close()

	records := []T{}
	for rows.Next() {
		rec, err := s.t.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", s.t.name, err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", s.t.name, err)
	}
	return records, nil
}
