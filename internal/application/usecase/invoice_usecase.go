package usecase

import (
	"fmt"
	"time"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/billing"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// InvoiceUseCase aplica reglas de negocio para facturas, incluida la
// transición de estado de pago.
type InvoiceUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	now       func() time.Time
}

// NewInvoiceUseCase construye el caso de uso. El reloj se fija en time.Now;
// los tests lo sustituyen con WithClock.
func NewInvoiceUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository) *InvoiceUseCase {
	return &InvoiceUseCase{invoices: invoices, companies: companies, now: time.Now}
}

// WithClock sustituye la fuente de tiempo (para tests).
func (uc *InvoiceUseCase) WithClock(now func() time.Time) *InvoiceUseCase {
	uc.now = now
	return uc
}

// List devuelve el listado {id, comp_code} de todas las facturas.
func (uc *InvoiceUseCase) List() (*dto.InvoiceListResponse, error) {
	list, err := uc.invoices.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvoiceSummary, 0, len(list))
	for _, inv := range list {
		items = append(items, dto.InvoiceSummary{ID: inv.ID, CompCode: inv.CompCode})
	}
	return &dto.InvoiceListResponse{Invoices: items}, nil
}

// Create crea una factura para una empresa. La base asigna id y add_date;
// paid arranca en false y paid_date en null.
func (uc *InvoiceUseCase) Create(in dto.CreateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.CompCode == "" || in.Amt == nil {
		return nil, fmt.Errorf("%w: se requieren 'comp_code' y 'amt'", domain.ErrInvalidInput)
	}
	if !in.Amt.IsPositive() {
		return nil, fmt.Errorf("%w: 'amt' debe ser positivo", domain.ErrInvalidInput)
	}
	invoice := &entity.Invoice{CompCode: in.CompCode, Amt: *in.Amt}
	if err := uc.invoices.Create(invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// GetByID devuelve el detalle de la factura con su empresa embebida.
func (uc *InvoiceUseCase) GetByID(id int64) (*dto.InvoiceDetail, error) {
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: factura con id '%d'", domain.ErrNotFound, id)
	}
	company, err := uc.companies.GetByCode(invoice.CompCode)
	if err != nil {
		return nil, err
	}
	if company == nil {
		// La FK garantiza la empresa; si falta, la base está inconsistente.
		return nil, fmt.Errorf("empresa '%s' de la factura %d no existe", invoice.CompCode, id)
	}
	return &dto.InvoiceDetail{
		ID:       invoice.ID,
		Amt:      invoice.Amt,
		Paid:     invoice.Paid,
		AddDate:  invoice.AddDate,
		PaidDate: invoice.PaidDate,
		Company:  *companyToResponse(company),
	}, nil
}

// Update actualiza amt y el estado de pago de la factura. Contrato: 'amt' y
// 'paid' son ambos obligatorios. El nuevo paid_date lo calcula
// billing.ResolvePaidDate a partir del estado previo; amt, paid y paid_date
// se persisten en un solo UPDATE. Actualizaciones concurrentes de la misma
// factura no se serializan: gana la última escritura.
func (uc *InvoiceUseCase) Update(id int64, in dto.UpdateInvoiceRequest) (*dto.InvoiceResponse, error) {
	if in.Amt == nil || in.Paid == nil {
		return nil, fmt.Errorf("%w: se requieren 'amt' y 'paid'", domain.ErrInvalidInput)
	}
	if !in.Amt.IsPositive() {
		return nil, fmt.Errorf("%w: 'amt' debe ser positivo", domain.ErrInvalidInput)
	}
	invoice, err := uc.invoices.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, fmt.Errorf("%w: factura con id '%d'", domain.ErrNotFound, id)
	}

	invoice.Amt = *in.Amt
	invoice.Paid = *in.Paid
	invoice.PaidDate = billing.ResolvePaidDate(invoice.PaidDate, *in.Paid, uc.now())

	if err := uc.invoices.Update(invoice); err != nil {
		return nil, err
	}
	return invoiceToResponse(invoice), nil
}

// Delete elimina la factura.
func (uc *InvoiceUseCase) Delete(id int64) error {
	return uc.invoices.Delete(id)
}

func invoiceToResponse(inv *entity.Invoice) *dto.InvoiceResponse {
	return &dto.InvoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
	}
}
