package store

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/avatar-tools/logscan/internal/models"
	srvErrors "github.com/avatar-tools/logscan/pkg/errors"
)

type NotesStore struct {
	db QueryInterceptor
}

func NewNotesStore(db QueryInterceptor) *NotesStore {
	return &NotesStore{db: db}
}

func notesSelect() sq.SelectBuilder {
	return sq.Select("avatar", "notes", "created_at", "updated_at").From(notesTable)
}

func (s *NotesStore) Get(ctx context.Context, avatar string) (*models.Notes, error) {
	query, args, err := notesSelect().Where(sq.Eq{"avatar": avatar}).ToSql()
	if err != nil {
		return nil, err
	}

	var n models.Notes
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&n.Avatar, &n.Text, &n.CreatedAt, &n.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, srvErrors.NewNotesNotFoundError(avatar)
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *NotesStore) Save(ctx context.Context, avatar, text string) error {
	query, args, err := sq.Insert(notesTable).
		Columns("avatar", "notes").
		Values(avatar, text).
		Suffix(notesUpsertSuffix).
		ToSql()
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, query, args...)
	return err
}

func (s *NotesStore) Delete(ctx context.Context, avatar string) error {
	query, args, err := sq.Delete(notesTable).Where(sq.Eq{"avatar": avatar}).ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return srvErrors.NewNotesNotFoundError(avatar)
	}
	return nil
}

func (s *NotesStore) List(ctx context.Context, opts ...ListOption) ([]models.Notes, error) {
	builder := notesSelect().OrderBy("avatar")
	for _, opt := range opts {
		builder = opt(builder)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := []models.Notes{}
	for rows.Next() {
		var n models.Notes
		if err := rows.Scan(&n.Avatar, &n.Text, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

type ListOption func(sq.SelectBuilder) sq.SelectBuilder

func ByAvatars(avatars ...string) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		if len(avatars) == 0 {
			return b
		}
		return b.Where(sq.Eq{"avatar": avatars})
	}
}

func WithLimit(limit uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Limit(limit)
	}
}

func WithOffset(offset uint64) ListOption {
	return func(b sq.SelectBuilder) sq.SelectBuilder {
		return b.Offset(offset)
	}
}
