// Package queries holds the Postgres statements shared by the workers.
// Every function takes a database.Querier so callers can run it inside WithTx.
package queries

import (
	"context"
	"database/sql"
	"errors"

	apperrors "rental-workers/internal/common/errors"
)

func queryError(ctx context.Context, name string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return apperrors.NewQueryTimeoutError(name)
	}
	return apperrors.NewQueryExecutionFailedError(name, err)
}

func nullString(s sql.NullString) string {
	if s.Valid {
		return s.String
	}
	return ""
}

func nullInt64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullIntPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullBoolPtr(b sql.NullBool) *bool {
	if !b.Valid {
		return nil
	}
	v := b.Bool
	return &v
}

func rowsAffected(ctx context.Context, name string, res sql.Result) (int64, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return 0, queryError(ctx, name, err)
	}
	return n, nil
}
