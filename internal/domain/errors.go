package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrInvalidWeight peso neto (bruto - tara) no positivo.
	ErrInvalidWeight = errors.New("el peso neto debe ser positivo (bruto > tara)")
	// ErrNotOperator el usuario existe pero su rol no es OPERATOR.
	ErrNotOperator = errors.New("el usuario no está autorizado como operador")
	// ErrInvalidTransition transición de estado no permitida para un registro de pesaje.
	ErrInvalidTransition = errors.New("transición de estado inválida")
)

// Entidades referenciadas por NotFoundError.
const (
	EntityMaterial     = "material"
	EntityOperator     = "operator"
	EntitySupplier     = "supplier"
	EntityUser         = "user"
	EntityWeightRecord = "weight record"
	EntityNotification = "notification"
)

// FieldError describe un campo inválido del payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todos los campos inválidos de una petición.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validación: " + strings.Join(parts, "; ")
}

// Add registra un campo inválido.
func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// ErrOrNil devuelve el propio error sólo si hay campos inválidos.
func (e *ValidationError) ErrOrNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// NotFoundError referencia inexistente; Entity indica cuál.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q no encontrado", e.Entity, e.ID)
}

// Is permite errors.Is(err, ErrNotFound).
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// PersistenceError fallo del almacenamiento durante una escritura o lectura.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsNotFound indica si err es un NotFoundError de la entidad dada.
func IsNotFound(err error, entity string) bool {
	var nf *NotFoundError
	return errors.As(err, &nf) && nf.Entity == entity
}
