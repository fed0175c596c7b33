package utils

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation. Concurrent writers racing on the same username/email/name are
// resolved by the store's constraint; the losing request sees this error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// UniqueViolationColumn returns the column hinted at by the violated
// constraint name, or "" if err is not a unique violation.
func UniqueViolationColumn(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return ""
	}
	name := strings.ToLower(pgErr.ConstraintName)
	switch {
	case strings.Contains(name, "email"):
		return "email"
	case strings.Contains(name, "username"):
		return "username"
	case strings.Contains(name, "name"):
		return "name"
	default:
		return name
	}
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign-key
// violation, i.e. a referenced parent row does not exist.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode
}

// ForeignKeyConstraint returns the name of the violated FK constraint, or
// "" if err is not a foreign-key violation.
func ForeignKeyConstraint(err error) string {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != foreignKeyViolationCode {
		return ""
	}
	return pgErr.ConstraintName
}

// IsNoRows reports whether err means the query matched nothing.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
