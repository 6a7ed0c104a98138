package usecase

import (
	"fmt"
	"slices"

	"github.com/jhoicas/biztime-api/internal/application/dto"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// IndustryUseCase aplica reglas de negocio para industrias y su asociación
// con empresas.
type IndustryUseCase struct {
	industries repository.IndustryRepository
	companies  repository.CompanyRepository
}

// NewIndustryUseCase construye el caso de uso.
func NewIndustryUseCase(industries repository.IndustryRepository, companies repository.CompanyRepository) *IndustryUseCase {
	return &IndustryUseCase{industries: industries, companies: companies}
}

// List devuelve una fila por asociación industria↔empresa; las industrias sin
// empresas aparecen con comp_code null.
func (uc *IndustryUseCase) List() (*dto.IndustryCompanyListResponse, error) {
	rows, err := uc.industries.ListWithCompanies()
	if err != nil {
		return nil, err
	}
	items := make([]dto.IndustryCompanyItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, dto.IndustryCompanyItem{
			Code:     r.Code,
			Industry: r.Industry,
			CompCode: r.CompCode,
		})
	}
	return &dto.IndustryCompanyListResponse{IndustriesCompanies: items}, nil
}

// Create crea una industria.
func (uc *IndustryUseCase) Create(in dto.CreateIndustryRequest) (*dto.IndustryResponse, error) {
	if in.Code == "" || in.Industry == "" {
		return nil, fmt.Errorf("%w: se requieren 'code' e 'industry'", domain.ErrInvalidInput)
	}
	industry := &entity.Industry{Code: in.Code, Industry: in.Industry}
	if err := uc.industries.Create(industry); err != nil {
		return nil, err
	}
	return &dto.IndustryResponse{Code: industry.Code, Industry: industry.Industry}, nil
}

// Link asocia una industria a una empresa. Antes de insertar verifica que
// ambos codes existan; la industria se comprueba primero y el primer fallo es
// el que se reporta. Un par duplicado no se valida aquí: falla en la
// restricción de unicidad de la base y se propaga como error de persistencia.
func (uc *IndustryUseCase) Link(in dto.CreateIndustryLinkRequest) (*dto.IndustryLinkResponse, error) {
	if in.IndCode == "" || in.CompCode == "" {
		return nil, fmt.Errorf("%w: se requieren 'ind_code' y 'comp_code'", domain.ErrInvalidInput)
	}

	industryCodes, err := uc.industries.ListCodes()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(industryCodes, in.IndCode) {
		return nil, fmt.Errorf("%w: la industria '%s' no existe", domain.ErrInvalidInput, in.IndCode)
	}

	companyCodes, err := uc.companies.ListCodes()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(companyCodes, in.CompCode) {
		return nil, fmt.Errorf("%w: la empresa '%s' no existe", domain.ErrInvalidInput, in.CompCode)
	}

	link := &entity.IndustryCompany{IndCode: in.IndCode, CompCode: in.CompCode}
	if err := uc.industries.CreateLink(link); err != nil {
		return nil, err
	}
	return &dto.IndustryLinkResponse{IndCode: link.IndCode, CompCode: link.CompCode}, nil
}
