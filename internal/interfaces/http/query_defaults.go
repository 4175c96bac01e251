package http

import (
	"time"

	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// QueryDefaults valores por omisión de los filtros del tablero.
type QueryDefaults struct {
	Start string           // inicio del rango si no se envía (yyyy-MM-dd)
	Now   func() time.Time // reloj para "hoy"; time.Now si es nil
}

func (d QueryDefaults) today() string {
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	return now().Format(dateLayout)
}

// rangeFilter completa base, inicio y fin con los valores por omisión y
// verifica el formato yyyy-MM-dd. ok=false devuelve el mensaje de error.
func (d QueryDefaults) rangeFilter(s entity.SessionContext, base, start, end *string) (msg string, ok bool) {
	if *base == "" {
		*base = s.User.Base
	}
	if *start == "" {
		*start = d.Start
	}
	if *end == "" {
		*end = d.today()
	}
	if !isDate(*start) {
		return "start debe tener formato yyyy-MM-dd", false
	}
	if !isDate(*end) {
		return "end debe tener formato yyyy-MM-dd", false
	}
	return "", true
}

func isDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
