package balance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/asset-balance-api/internal/domain"
	"github.com/jhoicas/asset-balance-api/internal/domain/balance"
	"github.com/jhoicas/asset-balance-api/internal/domain/entity"
)

func ids(movements []entity.AssetMovement) []string {
	out := make([]string, 0, len(movements))
	for _, m := range movements {
		out = append(out, m.ID)
	}
	return out
}

func demoLedger() []entity.AssetMovement {
	return []entity.AssetMovement{
		{ID: "mov1", Category: entity.CategoryVehicle, Type: entity.MovementTypePurchase, Quantity: 2, Base: "base1", Date: "2023-09-01"},
		{ID: "mov2", Category: entity.CategoryVehicle, Type: entity.MovementTypeTransferOut, Quantity: 5, Base: "base1", Date: "2023-10-15", RelatedTransferID: "transfer1"},
		{ID: "mov3", Category: entity.CategoryVehicle, Type: entity.MovementTypeTransferIn, Quantity: 5, Base: "base2", Date: "2023-10-15", RelatedTransferID: "transfer1"},
		{ID: "mov4", Category: entity.CategoryVehicle, Type: entity.MovementTypeAssignment, Quantity: 50, Base: "base1", Date: "2023-10-20"},
		{ID: "mov5", Category: entity.CategoryAmmunition, Type: entity.MovementTypeExpenditure, Quantity: 1000, Base: "base1", Date: "2023-10-25"},
	}
}

func TestFilterByBaseAndRange_SeleccionaBaseYRango(t *testing.T) {
	got := balance.FilterByBaseAndRange(demoLedger(), "base1", "2023-01-01", "2023-12-31")
	assert.Equal(t, []string{"mov1", "mov2", "mov4", "mov5"}, ids(got), "debe conservar el orden del libro")

	got = balance.FilterByBaseAndRange(demoLedger(), "base2", "2023-01-01", "2023-12-31")
	assert.Equal(t, []string{"mov3"}, ids(got))
}

func TestFilterByBaseAndRange_LimitesInclusivos(t *testing.T) {
	ledger := demoLedger()

	got := balance.FilterByBaseAndRange(ledger, "base1", "2023-09-01", "2023-10-25")
	assert.Equal(t, []string{"mov1", "mov2", "mov4", "mov5"}, ids(got), "ambos extremos se incluyen")

	got = balance.FilterByBaseAndRange(ledger, "base1", "2023-09-02", "2023-10-24")
	assert.Equal(t, []string{"mov2", "mov4"}, ids(got), "un día fuera de cada extremo se excluye")
}

func TestFilterByBaseAndRange_BaseDesconocida(t *testing.T) {
	got := balance.FilterByBaseAndRange(demoLedger(), "base99", "2000-01-01", "2099-12-31")
	require.NotNil(t, got)
	assert.Empty(t, got)

	b := balance.ComputeBalance(got, 50000)
	assert.Equal(t, entity.BalanceData{Opening: 50000, Closing: 50000}, b)
}

func TestFilterByBaseAndRange_NoMutaEntrada(t *testing.T) {
	ledger := demoLedger()
	snapshot := append([]entity.AssetMovement(nil), ledger...)

	got := balance.FilterByBaseAndRange(ledger, "base1", "2023-01-01", "2023-12-31")
	got[0].Quantity = 999

	assert.Equal(t, snapshot, ledger)
}

func TestFilterByBaseAndRange_RangoInvertidoVacio(t *testing.T) {
	got := balance.FilterByBaseAndRange(demoLedger(), "base1", "2023-12-31", "2023-01-01")
	assert.Empty(t, got)
}

func TestFilterByRange_TodasLasBases(t *testing.T) {
	got := balance.FilterByRange(demoLedger(), "2023-10-15", "2023-10-20")
	assert.Equal(t, []string{"mov2", "mov3", "mov4"}, ids(got), "incluye base1 y base2 en orden del libro")

	got = balance.FilterByRange(demoLedger(), "2023-12-31", "2023-01-01")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterByCategory(t *testing.T) {
	ledger := demoLedger()

	assert.Equal(t, []string{"mov5"}, ids(balance.FilterByCategory(ledger, entity.CategoryAmmunition)))
	assert.Len(t, balance.FilterByCategory(ledger, ""), len(ledger))
	assert.Len(t, balance.FilterByCategory(ledger, balance.CategoryAll), len(ledger))
	assert.Empty(t, balance.FilterByCategory(ledger, entity.CategoryWeapon))
}

func TestValidateRange(t *testing.T) {
	require.NoError(t, balance.ValidateRange("2023-01-01", "2023-12-31"))
	require.NoError(t, balance.ValidateRange("2023-05-05", "2023-05-05"), "un solo día es válido")

	err := balance.ValidateRange("2023-12-31", "2023-01-01")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRange))

	var rangeErr *domain.InvalidRangeError
	require.ErrorAs(t, err, &rangeErr)
	assert.Equal(t, "2023-12-31", rangeErr.Start)
	assert.Equal(t, "2023-01-01", rangeErr.End)
}
