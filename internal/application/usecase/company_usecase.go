package usecase

import (
	"fmt"

	"github.com/gosimple/slug"
	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// CompanyUseCase aplica reglas de negocio para empresas.
type CompanyUseCase struct {
	companies repository.CompanyRepository
	invoices  repository.InvoiceRepository
}

// NewCompanyUseCase construye el caso de uso con los puertos de persistencia.
// El repo de facturas se usa solo para la vista compuesta de GetByCode.
func NewCompanyUseCase(companies repository.CompanyRepository, invoices repository.InvoiceRepository) *CompanyUseCase {
	return &CompanyUseCase{companies: companies, invoices: invoices}
}

// List devuelve el listado {code, name} de todas las empresas.
func (uc *CompanyUseCase) List() (*dto.CompanyListResponse, error) {
	list, err := uc.companies.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.CompanySummary, 0, len(list))
	for _, c := range list {
		items = append(items, dto.CompanySummary{Code: c.Code, Name: c.Name})
	}
	return &dto.CompanyListResponse{Companies: items}, nil
}

// Create crea una empresa derivando el code como slug del nombre.
func (uc *CompanyUseCase) Create(in dto.CreateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: se requieren 'name' y 'description'", domain.ErrInvalidInput)
	}
	company := &entity.Company{
		Code:        slug.Make(in.Name),
		Name:        in.Name,
		Description: in.Description,
	}
	if err := uc.companies.Create(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// GetByCode arma la vista compuesta de la empresa: campos propios, industrias
// asociadas e ids de facturas. Las dos consultas son independientes y no van
// en transacción; una mutación concurrente entre ambas puede reflejarse en la
// vista (carrera conocida y aceptada).
func (uc *CompanyUseCase) GetByCode(code string) (*dto.CompanyDetail, error) {
	company, industries, err := uc.companies.GetByCodeWithIndustries(code)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, fmt.Errorf("%w: empresa con código '%s'", domain.ErrNotFound, code)
	}
	invoiceIDs, err := uc.invoices.ListIDsByCompany(code)
	if err != nil {
		return nil, err
	}
	if industries == nil {
		industries = make([]string, 0)
	}
	if invoiceIDs == nil {
		invoiceIDs = make([]int64, 0)
	}
	return &dto.CompanyDetail{
		Code:        company.Code,
		Name:        company.Name,
		Description: company.Description,
		Industries:  industries,
		Invoices:    invoiceIDs,
	}, nil
}

// Update reemplaza name y description de la empresa.
func (uc *CompanyUseCase) Update(code string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	if in.Name == "" || in.Description == "" {
		return nil, fmt.Errorf("%w: se requieren 'name' y 'description'", domain.ErrInvalidInput)
	}
	company := &entity.Company{Code: code, Name: in.Name, Description: in.Description}
	if err := uc.companies.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// Delete elimina la empresa; la base elimina en cascada sus facturas y
// asociaciones de industria.
func (uc *CompanyUseCase) Delete(code string) error {
	return uc.companies.Delete(code)
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{Code: c.Code, Name: c.Name, Description: c.Description}
}
