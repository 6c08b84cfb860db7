package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// exclusionViolation is SQLSTATE 23P01, raised by the appointment overlap
// exclusion constraint when a concurrent insert loses the race.
const exclusionViolation = "23P01"

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == exclusionViolation
}
