package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"strings"

	"fightcard/internal/shared"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes we translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgInvalidTextRepr     = "22P02"
	pgAdminShutdown       = "57P01"
	pgCrashShutdown       = "57P02"
	pgCannotConnectNow    = "57P03"
)

// mapError translates driver and ORM errors into the shared taxonomy.
// The original error stays in the chain for logging.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	// gorm.Config.TranslateError turns known constraint errors into these
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, shared.ErrNotFound)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w: %w", op, shared.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%s: %w: %w", op, shared.ErrNotFound, err)
	case errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%s: %w: %w", op, shared.ErrInvalidArgument, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch {
		case pgErr.Code == pgUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, shared.ErrConflict, err)
		case pgErr.Code == pgForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, shared.ErrNotFound, err)
		case pgErr.Code == pgCheckViolation, pgErr.Code == pgInvalidTextRepr:
			return fmt.Errorf("%s: %w: %w", op, shared.ErrInvalidArgument, err)
		case strings.HasPrefix(pgErr.Code, "08"),
			pgErr.Code == pgAdminShutdown,
			pgErr.Code == pgCrashShutdown,
			pgErr.Code == pgCannotConnectNow:
			return fmt.Errorf("%s: %w: %w", op, shared.ErrStorageUnavailable, err)
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if isUnavailable(err) {
		return fmt.Errorf("%s: %w: %w", op, shared.ErrStorageUnavailable, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) ||
		errors.Is(err, sql.ErrConnDone) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return true
	}

	// database/sql does not export a sentinel for a closed pool
	return strings.Contains(err.Error(), "sql: database is closed")
}
