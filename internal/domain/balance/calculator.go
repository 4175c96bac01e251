package balance

import "github.com/jhoicas/asset-balance-api/internal/domain/entity"

// ComputeBalance reduce los movimientos a un BalanceData.
//
//	NetMovement = Purchases + TransfersIn - TransfersOut
//	Closing     = Opening + NetMovement - Expended
//
// Assigned se informa pero no altera Closing: una asignación reserva stock existente.
// Cantidades negativas no se validan; se propagan a las sumas.
func ComputeBalance(movements []entity.AssetMovement, openingBalance int64) entity.BalanceData {
	b := entity.BalanceData{Opening: openingBalance}
	for _, m := range movements {
		switch m.Type {
		case entity.MovementTypePurchase:
			b.Purchases += m.Quantity
		case entity.MovementTypeTransferIn:
			b.TransfersIn += m.Quantity
		case entity.MovementTypeTransferOut:
			b.TransfersOut += m.Quantity
		case entity.MovementTypeAssignment:
			b.Assigned += m.Quantity
		case entity.MovementTypeExpenditure:
			b.Expended += m.Quantity
		}
	}
	b.NetMovement = b.Purchases + b.TransfersIn - b.TransfersOut
	b.Closing = b.Opening + b.NetMovement - b.Expended
	return b
}

// Bucket una barra del gráfico de movimientos.
type Bucket struct {
	Label string
	Type  string
	Value int64
}

// Breakdown agrupa los cinco acumuladores en el orden en que se grafican.
func Breakdown(b entity.BalanceData) []Bucket {
	return []Bucket{
		{Label: "Purchases", Type: entity.MovementTypePurchase, Value: b.Purchases},
		{Label: "Transfers In", Type: entity.MovementTypeTransferIn, Value: b.TransfersIn},
		{Label: "Transfers Out", Type: entity.MovementTypeTransferOut, Value: b.TransfersOut},
		{Label: "Assigned", Type: entity.MovementTypeAssignment, Value: b.Assigned},
		{Label: "Expended", Type: entity.MovementTypeExpenditure, Value: b.Expended},
	}
}
