package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/tu-usuario/cellar-pro/internal/domain"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// conflictOnUnique traduce una violación de unicidad a Conflict de dominio
// (carrera entre el chequeo previo y el INSERT); otros errores pasan tal cual.
func conflictOnUnique(err error, entity, id, rule, message string) error {
	if isUniqueViolation(err) {
		return domain.Conflict(entity, id, rule, message)
	}
	return err
}
