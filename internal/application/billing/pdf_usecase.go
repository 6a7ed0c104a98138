package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// PDFUseCase genera el PDF de una factura reuniendo factura y empresa.
type PDFUseCase struct {
	invoices  repository.InvoiceRepository
	companies repository.CompanyRepository
	generator InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoices repository.InvoiceRepository, companies repository.CompanyRepository, generator InvoicePDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoices: invoices, companies: companies, generator: generator}
}

// Generate devuelve los bytes del PDF de la factura indicada.
func (uc *PDFUseCase) Generate(ctx context.Context, id int64) ([]byte, error) {
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
		return nil, fmt.Errorf("empresa '%s' de la factura %d no existe", invoice.CompCode, id)
	}
	return uc.generator.GenerateInvoicePDF(ctx, invoice, company)
}
