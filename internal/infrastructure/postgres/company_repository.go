package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL
// (usable con pool o tx).
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// List devuelve todas las empresas ordenadas por code.
func (r *CompanyRepo) List() ([]*entity.Company, error) {
	query := `SELECT code, name, COALESCE(description, '') FROM companies ORDER BY code`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(company *entity.Company) error {
	query := `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)`
	_, err := r.q.Exec(context.Background(), query,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: empresa con código '%s' ya existe", domain.ErrDuplicate, company.Code)
		}
		return fmt.Errorf("insert company: %w", err)
	}
	return nil
}

// GetByCode obtiene una empresa por code. Devuelve (nil, nil) si no existe.
func (r *CompanyRepo) GetByCode(code string) (*entity.Company, error) {
	query := `SELECT code, name, COALESCE(description, '') FROM companies WHERE code = $1`
	var c entity.Company
	err := r.q.QueryRow(context.Background(), query, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// GetByCodeWithIndustries trae la empresa y los nombres de sus industrias en
// un solo fetch con LEFT JOIN. Cero filas significa que la empresa no existe;
// una empresa sin industrias devuelve exactamente una fila con industry NULL,
// que aquí se traduce a lista vacía. Así el "no encontrada" nunca se confunde
// con "sin industrias".
func (r *CompanyRepo) GetByCodeWithIndustries(code string) (*entity.Company, []string, error) {
	query := `
		SELECT c.code, c.name, COALESCE(c.description, ''), i.industry
		FROM companies AS c
		LEFT JOIN industries_companies AS ic ON ic.comp_code = c.code
		LEFT JOIN industries AS i ON ic.ind_code = i.code
		WHERE c.code = $1`
	rows, err := r.q.Query(context.Background(), query, code)
	if err != nil {
		return nil, nil, fmt.Errorf("get company with industries: %w", err)
	}
	defer rows.Close()

	var company *entity.Company
	industries := make([]string, 0)
	for rows.Next() {
		var c entity.Company
		var industry *string
		if err := rows.Scan(&c.Code, &c.Name, &c.Description, &industry); err != nil {
			return nil, nil, fmt.Errorf("scan company row: %w", err)
		}
		company = &c
		if industry != nil {
			industries = append(industries, *industry)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}
	if company == nil {
		return nil, nil, nil
	}
	return company, industries, nil
}

// Update reemplaza name y description de una empresa existente.
func (r *CompanyRepo) Update(company *entity.Company) error {
	query := `UPDATE companies SET name = $2, description = $3 WHERE code = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		company.Code, company.Name, company.Description,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina una empresa por code. Las facturas y asociaciones de
// industria caen en cascada (ON DELETE CASCADE).
func (r *CompanyRepo) Delete(code string) error {
	cmd, err := r.q.Exec(context.Background(), `DELETE FROM companies WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListCodes devuelve todos los codes de empresa (para el validador de
// asociaciones).
func (r *CompanyRepo) ListCodes() ([]string, error) {
	rows, err := r.q.Query(context.Background(), `SELECT code FROM companies`)
	if err != nil {
		return nil, fmt.Errorf("list company codes: %w", err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan company code: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}
