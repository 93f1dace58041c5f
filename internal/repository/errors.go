package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"

	"postboard/internal/apperr"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Client-facing messages for store conditions.
const (
	msgStoreUnavailable = "Database connection error. Please try again later."
	msgEmailInUse       = "Email already in use"
	msgUnknownAuthor    = "Please provide an existing author for the post"
)

// translate maps a driver error to an apperr kind where one applies and
// wraps it with op otherwise. It returns nil for a nil err.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case isConnectivity(err):
		return apperr.Wrap(fmt.Errorf("%s: %w", op, err), apperr.KindStoreUnavailable, msgStoreUnavailable)
	case isUniqueViolation(err):
		return apperr.Wrap(fmt.Errorf("%s: %w", op, err), apperr.KindDuplicateKey, msgEmailInUse)
	case isForeignKeyViolation(err):
		ve := apperr.Validation(msgUnknownAuthor)
		ve.Err = fmt.Errorf("%s: %w", op, err)
		return ve
	}
	return fmt.Errorf("%s: %w", op, err)
}

func sqliteCode(err error) (int, bool) {
	var se *sqlite.Error
	if errors.As(err, &se) {
		return se.Code(), true
	}
	return 0, false
}

// Constraint checks also match on message text: wrapped and mocked driver
// errors do not always carry a *sqlite.Error.
func isUniqueViolation(err error) bool {
	if code, ok := sqliteCode(err); ok &&
		(code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func isForeignKeyViolation(err error) bool {
	if code, ok := sqliteCode(err); ok && code == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY {
		return true
	}
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

func isConnectivity(err error) bool {
	if errors.Is(err, sql.ErrConnDone) || errors.Is(err, driver.ErrBadConn) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	if code, ok := sqliteCode(err); ok {
		switch code & 0xff {
		case sqlite3.SQLITE_CANTOPEN, sqlite3.SQLITE_NOTADB, sqlite3.SQLITE_IOERR, sqlite3.SQLITE_CORRUPT:
			return true
		}
		return false
	}
	// database/sql does not export this one
	return strings.Contains(err.Error(), "sql: database is closed")
}
