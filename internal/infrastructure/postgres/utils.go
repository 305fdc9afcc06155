package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Código de PostgreSQL para violación de constraint único.
const pgUniqueViolation = "23505"

// isUniqueViolation indica si el error proviene de un índice/constraint único,
// por ejemplo un código de producto repetido dentro del mismo tenant.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
