package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrInvalidRange = errors.New("rango de fechas inválido")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
)

// InvalidRangeError indica que la fecha inicial es posterior a la final.
// Es recuperable: el cliente debe corregir o intercambiar los límites.
type InvalidRangeError struct {
	Start string
	End   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("rango de fechas inválido: %s es posterior a %s", e.Start, e.End)
}

// Is permite errors.Is(err, ErrInvalidRange).
func (e *InvalidRangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
