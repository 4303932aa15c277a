package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/SakithLiyanage/LangBridge-Language-Guider-sub000/internal/domain"
)

// MapError converts database/sql and SQLite errors to domain errors.
// Context errors pass through unmapped.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %s: %w", entity, id, err)
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s %s: %w", entity, id, domain.ErrNotFound)
	}

	var sqlErr *sqlite.Error
	if errors.As(err, &sqlErr) {
		if target := constraintError(sqlErr); target != nil {
			return fmt.Errorf("%s %s: %w", entity, id, target)
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, err)
}

func constraintError(e *sqlite.Error) error {
	switch e.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return domain.ErrAlreadyExists
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return domain.ErrNotFound
	case sqlite3.SQLITE_CONSTRAINT_CHECK, sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return domain.ErrValidation
	}

	// Primary result code only: fall back to the message.
	if e.Code()&0xff != sqlite3.SQLITE_CONSTRAINT {
		return nil
	}
	msg := e.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.ErrAlreadyExists
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return domain.ErrNotFound
	case strings.Contains(msg, "CHECK constraint failed"), strings.Contains(msg, "NOT NULL constraint failed"):
		return domain.ErrValidation
	}
	return nil
}
