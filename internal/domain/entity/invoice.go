package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice representa una factura emitida a una empresa.
//
// Invariante: PaidDate es no-nulo si y solo si Paid es true. La transición
// la calcula billing.ResolvePaidDate; los repos solo persisten el resultado.
type Invoice struct {
	ID       int64
	CompCode string // inmutable después de la creación
	Amt      decimal.Decimal
	Paid     bool
	AddDate  time.Time // asignada por la base al insertar
	PaidDate *time.Time
}
