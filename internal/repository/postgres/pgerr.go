package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openshelf/openshelf-server/internal/model"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// wrapStorageErr classifies connection-level failures as transient so
// callers can retry idempotent lookups; everything else is wrapped
// opaque.
func wrapStorageErr(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %s: %s", model.ErrStorageUnavailable, op, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && strings.HasPrefix(pgErr.Code, "08") {
		// Class 08: connection exception.
		return fmt.Errorf("%w: %s: %s", model.ErrStorageUnavailable, op, pgErr.Message)
	}
	return fmt.Errorf("failed to %s: %w", op, err)
}
