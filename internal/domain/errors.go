package domain

import (
	"errors"
	"fmt"
)

// Kind clasifica los errores de negocio para que las capas externas decidan
// (código HTTP, reintento) sin parsear mensajes.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
)

// Errores centinela de dominio (sin dependencias externas). Usar con errors.Is.
var (
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
	ErrValidation = errors.New("regla de negocio violada")
)

// Reglas de negocio que puede reportar un *Error (campo Rule).
const (
	RuleDuplicateLabel        = "duplicate_label"
	RuleLabelFormat           = "label_format"
	RuleNotVolumeUnit         = "not_volume_unit"
	RuleInvalidCapacity       = "invalid_capacity"
	RuleCapacityBelowContents = "capacity_below_contents"
	RuleTankOccupied          = "tank_occupied"
	RuleTankDeleted           = "tank_deleted"
	RuleTankNotDeleted        = "tank_not_deleted"
	RuleBatchCompleted        = "batch_completed"
	RuleInvalidType           = "invalid_transaction_type"
	RuleNegativeQuantity      = "negative_quantity"
	RuleInsufficientQuantity  = "insufficient_quantity"
	RuleExceedsCapacity       = "exceeds_capacity"
	RuleNothingToTransfer     = "nothing_to_transfer"
	RuleNoActiveBatch         = "no_active_batch"
	RuleSameTank              = "same_tank"
)

// Error error de dominio con contexto estructurado: qué entidad, qué regla.
// Unwrap devuelve el centinela del Kind, así los callers usan errors.Is.
type Error struct {
	Kind    Kind
	Entity  string // "tank", "batch", "transaction", "transaction_type", "unit"
	ID      string // id o label de la entidad afectada (puede ser vacío)
	Rule    string // regla violada (constantes Rule*); vacío en NotFound
	Message string
}

func (e *Error) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s %s: %s", e.Entity, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Message)
}

func (e *Error) Unwrap() error {
	switch e.Kind {
	case KindNotFound:
		return ErrNotFound
	case KindConflict:
		return ErrConflict
	case KindValidation:
		return ErrValidation
	}
	return nil
}

// NotFound construye un error de entidad inexistente.
func NotFound(entity, id string) *Error {
	return &Error{Kind: KindNotFound, Entity: entity, ID: id, Message: "no encontrado"}
}

// Conflict construye un error de unicidad o exclusividad de estado.
func Conflict(entity, id, rule, message string) *Error {
	return &Error{Kind: KindConflict, Entity: entity, ID: id, Rule: rule, Message: message}
}

// Validation construye un error de regla de negocio sobre un valor suministrado.
func Validation(entity, id, rule, message string) *Error {
	return &Error{Kind: KindValidation, Entity: entity, ID: id, Rule: rule, Message: message}
}

// IsNotFound indica si err es un NotFound de dominio.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsConflict indica si err es un Conflict de dominio.
func IsConflict(err error) bool { return errors.Is(err, ErrConflict) }

// IsValidation indica si err es una Validation de dominio.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
