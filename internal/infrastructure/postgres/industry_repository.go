package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

var _ repository.IndustryRepository = (*IndustryRepo)(nil)

// IndustryRepo implementación de IndustryRepository (usable con pool o tx).
type IndustryRepo struct {
	q Querier
}

// NewIndustryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewIndustryRepository(q Querier) *IndustryRepo {
	return &IndustryRepo{q: q}
}

// ListWithCompanies devuelve una fila por asociación industria↔empresa.
// LEFT JOIN: las industrias sin empresas salen con comp_code NULL.
func (r *IndustryRepo) ListWithCompanies() ([]*entity.IndustryCompanyRow, error) {
	query := `
		SELECT i.code, i.industry, ic.comp_code
		FROM industries AS i
		LEFT JOIN industries_companies AS ic ON i.code = ic.ind_code
		ORDER BY i.code, ic.comp_code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	defer rows.Close()

	var list []*entity.IndustryCompanyRow
	for rows.Next() {
		var row entity.IndustryCompanyRow
		if err := rows.Scan(&row.Code, &row.Industry, &row.CompCode); err != nil {
			return nil, fmt.Errorf("scan industry row: %w", err)
		}
		list = append(list, &row)
	}
	return list, rows.Err()
}

// Create persiste una nueva industria.
func (r *IndustryRepo) Create(industry *entity.Industry) error {
	query := `INSERT INTO industries (code, industry) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, industry.Code, industry.Industry)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: industria con código '%s' ya existe", domain.ErrDuplicate, industry.Code)
		}
		return fmt.Errorf("insert industry: %w", err)
	}
	return nil
}

// ListCodes devuelve todos los codes de industria (para el validador de
// asociaciones).
func (r *IndustryRepo) ListCodes() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT code FROM industries`)
	if err != nil {
		return nil, fmt.Errorf("list industry codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan industry code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// CreateLink inserta la asociación industria↔empresa. Un par duplicado viola
// la PK compuesta y se propaga como error de persistencia.
func (r *IndustryRepo) CreateLink(link *entity.IndustryCompany) error {
	query := `INSERT INTO industries_companies (ind_code, comp_code) VALUES ($1, $2)`
	_, err := r.q.Exec(context.Background(), query, link.IndCode, link.CompCode)
	if err != nil {
		return fmt.Errorf("insert industry link: %w", err)
	}
	return nil
}
