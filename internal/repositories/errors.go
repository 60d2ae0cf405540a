package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors surfaced to the services. Uniqueness violations are
// mapped here so the storage-layer constraint, not the preceding
// existence check, is the authoritative conflict signal.
var (
	ErrApplicationExists = errors.New("application already exists for this project and freelancer")
	ErrSlugTaken         = errors.New("category slug already exists")
)

const pgUniqueViolation = "23505"

// isUniqueViolation reports whether err is a postgres unique-index
// violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
