package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest entrada para crear una factura. Amt es puntero para
// distinguir "campo ausente" de cero.
type CreateInvoiceRequest struct {
	CompCode string           `json:"comp_code"`
	Amt      *decimal.Decimal `json:"amt"`
}

// UpdateInvoiceRequest entrada para actualizar una factura. Ambos campos son
// obligatorios: amt y el nuevo estado paid.
type UpdateInvoiceRequest struct {
	Amt  *decimal.Decimal `json:"amt"`
	Paid *bool            `json:"paid"`
}

// InvoiceSummary fila del listado de facturas.
type InvoiceSummary struct {
	ID       int64  `json:"id"`
	CompCode string `json:"comp_code"`
}

// InvoiceListResponse sobre del listado: {"invoices":[...]}.
type InvoiceListResponse struct {
	Invoices []InvoiceSummary `json:"invoices"`
}

// InvoiceResponse salida de una factura.
type InvoiceResponse struct {
	ID       int64           `json:"id"`
	CompCode string          `json:"comp_code"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
}

// InvoiceEnvelope sobre {"invoice":{...}}.
type InvoiceEnvelope struct {
	Invoice InvoiceResponse `json:"invoice"`
}

// InvoiceDetail salida de GET /invoices/:id: la factura con su empresa
// embebida en lugar del comp_code plano.
type InvoiceDetail struct {
	ID       int64           `json:"id"`
	Amt      decimal.Decimal `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  time.Time       `json:"add_date"`
	PaidDate *time.Time      `json:"paid_date"`
	Company  CompanyResponse `json:"company"`
}

// InvoiceDetailEnvelope sobre {"invoice":{...}} del detalle.
type InvoiceDetailEnvelope struct {
	Invoice InvoiceDetail `json:"invoice"`
}
