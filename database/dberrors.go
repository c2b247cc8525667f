package database

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrKind classifies a storage error so controllers can pick a status
// code without parsing driver messages.
type ErrKind int

const (
	// ErrKindInternal is anything unanticipated; log it, answer 500.
	ErrKindInternal ErrKind = iota
	// ErrKindNotFound means no matching row.
	ErrKindNotFound
	// ErrKindConflict means a uniqueness constraint was violated.
	ErrKindConflict
	// ErrKindReference means a foreign key was violated on write, or a
	// delete was blocked by a row that still references the target.
	ErrKindReference
)

// TranslateError maps driver-specific constraint errors onto ErrKind.
// It is the single classification point shared by every controller.
func TranslateError(err error) ErrKind {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrKindNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return ErrKindConflict
		case "23503": // foreign_key_violation
			return ErrKindReference
		}
		return ErrKindInternal
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case 1062: // ER_DUP_ENTRY
			return ErrKindConflict
		case 1451, 1452: // ER_ROW_IS_REFERENCED_2, ER_NO_REFERENCED_ROW_2
			return ErrKindReference
		}
		return ErrKindInternal
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		switch liteErr.ExtendedCode {
		case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
			return ErrKindConflict
		case sqlite3.ErrConstraintForeignKey, sqlite3.ErrConstraintTrigger:
			return ErrKindReference
		}
		return ErrKindInternal
	}

	return ErrKindInternal
}
