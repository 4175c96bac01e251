// Package balance contiene el motor de balances: filtro del libro de movimientos
// y cálculo del resumen por base y rango de fechas. Funciones puras, sin estado,
// seguras para invocarse en paralelo.
package balance

import (
	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

// CategoryAll desactiva el filtro por categoría.
const CategoryAll = "all"

// FilterByBaseAndRange devuelve los movimientos de baseID con fecha en [startDate, endDate].
// Las fechas se comparan como texto: solo es correcto con el formato fijo yyyy-MM-dd.
// Conserva el orden de inserción del libro y no modifica la entrada.
func FilterByBaseAndRange(ledger []entity.AssetMovement, baseID, startDate, endDate string) []entity.AssetMovement {
	out := make([]entity.AssetMovement, 0)
	for _, m := range ledger {
		if m.Base == baseID && startDate <= m.Date && m.Date <= endDate {
			out = append(out, m)
		}
	}
	return out
}

// FilterByRange devuelve los movimientos de cualquier base con fecha en [startDate, endDate].
// Mismo predicado de fechas que FilterByBaseAndRange, sin restricción de base.
func FilterByRange(ledger []entity.AssetMovement, startDate, endDate string) []entity.AssetMovement {
	out := make([]entity.AssetMovement, 0)
	for _, m := range ledger {
		if startDate <= m.Date && m.Date <= endDate {
			out = append(out, m)
		}
	}
	return out
}

// FilterByCategory conserva los movimientos de la categoría indicada.
// "" o "all" devuelven una copia de la entrada.
func FilterByCategory(movements []entity.AssetMovement, category string) []entity.AssetMovement {
	out := make([]entity.AssetMovement, 0, len(movements))
	for _, m := range movements {
		if category == "" || category == CategoryAll || m.Category == category {
			out = append(out, m)
		}
	}
	return out
}

// ValidateRange falla con *domain.InvalidRangeError si startDate es posterior a endDate.
func ValidateRange(startDate, endDate string) error {
	if startDate > endDate {
		return &domain.InvalidRangeError{Start: startDate, End: endDate}
	}
	return nil
}
