package billing

import (
	"context"

	"github.com/jhoicas/biztime-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto para renderizar la representación imprimible de
// una factura. La implementación vive en infrastructure/pdf.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, company *entity.Company) ([]byte, error)
}
