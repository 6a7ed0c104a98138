// Package billing contiene la lógica pura de estado de pago de facturas.
package billing

import "time"

// ResolvePaidDate calcula el nuevo paid_date de una factura dado su estado
// anterior y el flag paid solicitado. Mantiene el invariante
// "paid_date refleja el momento de la última transición a pagada, o nil":
//
//  1. No pagada (prevPaidDate nil) y paid=true  → now.
//  2. paid=false                                → nil, sin importar el estado previo.
//  3. Ya pagada y sigue pagada                  → se conserva prevPaidDate.
//
// La regla 3 hace la operación idempotente: repetir paid=true no recalcula
// la fecha.
func ResolvePaidDate(prevPaidDate *time.Time, paid bool, now time.Time) *time.Time {
	switch {
	case paid && prevPaidDate == nil:
		return &now
	case !paid:
		return nil
	default:
		return prevPaidDate
	}
}
