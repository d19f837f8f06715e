package store

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"
)

// QueryInterceptor wraps a *sql.DB and logs every statement at debug level.
type QueryInterceptor struct {
	db  *sql.DB
	log *zap.SugaredLogger
}

func NewQueryInterceptor(db *sql.DB) QueryInterceptor {
	return QueryInterceptor{db: db, log: zap.S().Named("store")}
}

func (q QueryInterceptor) QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row {
	defer q.trace("QueryRowContext", query, args, time.Now())
	return q.db.QueryRowContext(ctx, query, args...)
}

func (q QueryInterceptor) QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	defer q.trace("QueryContext", query, args, time.Now())
	return q.db.QueryContext(ctx, query, args...)
}

func (q QueryInterceptor) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	defer q.trace("ExecContext", query, args, time.Now())
	return q.db.ExecContext(ctx, query, args...)
}

func (q QueryInterceptor) trace(op, query string, args []any, start time.Time) {
	q.log.Debugw(op, "query", query, "args", args, "duration", time.Since(start))
}
