package entity

// BalanceData resumen calculado para una consulta (base, rango de fechas).
// Es un valor derivado: se recalcula en cada consulta y nunca se persiste.
type BalanceData struct {
	Opening      int64
	Closing      int64
	NetMovement  int64 // Purchases + TransfersIn - TransfersOut
	Purchases    int64
	TransfersIn  int64
	TransfersOut int64
	Assigned     int64 // no afecta Closing
	Expended     int64
}
