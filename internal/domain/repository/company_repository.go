package repository

import "github.com/jhoicas/biztime-api/internal/domain/entity"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	List() ([]*entity.Company, error)
	Create(company *entity.Company) error
	// GetByCodeWithIndustries trae la empresa junto con los nombres de sus
	// industrias en un solo fetch (LEFT JOIN). Devuelve (nil, nil, nil) si la
	// empresa no existe; una empresa sin industrias devuelve lista vacía.
	GetByCodeWithIndustries(code string) (*entity.Company, []string, error)
	GetByCode(code string) (*entity.Company, error)
	// Update reemplaza name y description. Devuelve domain.ErrNotFound si el
	// code no existe.
	Update(company *entity.Company) error
	// Delete elimina la empresa (las facturas y asociaciones caen en cascada
	// por la base). Devuelve domain.ErrNotFound si el code no existe.
	Delete(code string) error
	ListCodes() ([]string, error)
}
