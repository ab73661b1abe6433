package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"eventrsvp/internal/domain"
)

// SQLSTATE codes that mean the write was rejected by a constraint.
const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
	pqNotNullViolation    = "23502"
	pqCheckViolation      = "23514"
)

// mapWriteError converts constraint failures into domain.ErrConstraintViolation and
// leaves every other error untouched.
func mapWriteError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return err
	}
	switch pqErr.Code {
	case pqUniqueViolation, pqForeignKeyViolation, pqNotNullViolation, pqCheckViolation:
		return fmt.Errorf("%w: %s", domain.ErrConstraintViolation, pqErr.Message)
	}
	return err
}
