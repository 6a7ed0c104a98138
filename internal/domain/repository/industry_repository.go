package repository

import "github.com/jhoicas/biztime-api/internal/domain/entity"

// IndustryRepository define el puerto de persistencia para Industry y sus
// asociaciones con empresas.
type IndustryRepository interface {
	// ListWithCompanies devuelve una fila por asociación industria↔empresa
	// (LEFT JOIN: las industrias sin empresas aparecen con CompCode nil).
	ListWithCompanies() ([]*entity.IndustryCompanyRow, error)
	Create(industry *entity.Industry) error
	ListCodes() ([]string, error)
	// CreateLink inserta la asociación. Un par duplicado falla con el error
	// de unicidad de la base; no se ignora en silencio.
	CreateLink(link *entity.IndustryCompany) error
}
