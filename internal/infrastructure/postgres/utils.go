package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUndefinedTable verifica si un error corresponde a una tabla inexistente (42P01).
func isUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "42P01" // undefined_table
	}
	return false
}

// wrapQueryErr agrega contexto; si falta el esquema lo indica en el mensaje.
func wrapQueryErr(op string, err error) error {
	if isUndefinedTable(err) {
		return fmt.Errorf("%s: %w (aplicar migrations/001_schema.sql)", op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
