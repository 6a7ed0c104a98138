package repository

import "github.com/jhoicas/biztime-api/internal/domain/entity"

// InvoiceRepository define el puerto de persistencia para Invoice.
type InvoiceRepository interface {
	List() ([]*entity.Invoice, error)
	// Create inserta la factura y completa ID, AddDate, Paid y PaidDate con
	// los valores asignados por la base (RETURNING).
	Create(invoice *entity.Invoice) error
	// GetByID devuelve (nil, nil) si la factura no existe.
	GetByID(id int64) (*entity.Invoice, error)
	// Update persiste amt, paid y paid_date en una sola sentencia. Devuelve
	// domain.ErrNotFound si el id no existe.
	Update(invoice *entity.Invoice) error
	Delete(id int64) error
	// ListIDsByCompany devuelve los ids de factura de una empresa.
	ListIDsByCompany(compCode string) ([]int64, error)
}
