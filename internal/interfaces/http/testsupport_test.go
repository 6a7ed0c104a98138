package http_test

import (
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/biztime-api/internal/application/billing"
	"github.com/jhoicas/biztime-api/internal/application/usecase"
	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/biztime-api/internal/infrastructure/pdf"
	apphttp "github.com/jhoicas/biztime-api/internal/interfaces/http"
)

// Repos en memoria mínimos para levantar la app completa sin base de datos.
// El comportamiento replica el contrato de los adaptadores de PostgreSQL.

type memStore struct {
	companies     map[string]*entity.Company
	companyInds   map[string][]string
	invoices      map[int64]*entity.Invoice
	invoiceSeq    int64
	industries    map[string]string
	industryLinks []entity.IndustryCompany
}

func newMemStore() *memStore {
	return &memStore{
		companies:   make(map[string]*entity.Company),
		companyInds: make(map[string][]string),
		invoices:    make(map[int64]*entity.Invoice),
		industries:  make(map[string]string),
	}
}

type memCompanyRepo struct{ s *memStore }

func (r memCompanyRepo) List() ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range r.s.companies {
		copia := *c
		list = append(list, &copia)
	}
	slices.SortFunc(list, func(a, b *entity.Company) int {
		if a.Code < b.Code {
			return -1
		}
		return 1
	})
	return list, nil
}

func (r memCompanyRepo) Create(c *entity.Company) error {
	if _, ok := r.s.companies[c.Code]; ok {
		return fmt.Errorf("%w: empresa '%s'", domain.ErrDuplicate, c.Code)
	}
	copia := *c
	r.s.companies[c.Code] = &copia
	return nil
}

func (r memCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (r memCompanyRepo) GetByCodeWithIndustries(code string) (*entity.Company, []string, error) {
	c, ok := r.s.companies[code]
	if !ok {
		return nil, nil, nil
	}
	copia := *c
	return &copia, slices.Clone(r.s.companyInds[code]), nil
}

func (r memCompanyRepo) Update(c *entity.Company) error {
	existing, ok := r.s.companies[c.Code]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name, existing.Description = c.Name, c.Description
	return nil
}

func (r memCompanyRepo) Delete(code string) error {
	if _, ok := r.s.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.companies, code)
	// Cascada como en la base: facturas y asociaciones de la empresa.
	for id, inv := range r.s.invoices {
		if inv.CompCode == code {
			delete(r.s.invoices, id)
		}
	}
	return nil
}

func (r memCompanyRepo) ListCodes() ([]string, error) {
	var codes []string
	for code := range r.s.companies {
		codes = append(codes, code)
	}
	return codes, nil
}

type memInvoiceRepo struct{ s *memStore }

func (r memInvoiceRepo) List() ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range r.s.invoices {
		copia := *inv
		list = append(list, &copia)
	}
	slices.SortFunc(list, func(a, b *entity.Invoice) int { return int(a.ID - b.ID) })
	return list, nil
}

func (r memInvoiceRepo) Create(inv *entity.Invoice) error {
	r.s.invoiceSeq++
	inv.ID = r.s.invoiceSeq
	inv.Paid = false
	inv.PaidDate = nil
	inv.AddDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	copia := *inv
	r.s.invoices[inv.ID] = &copia
	return nil
}

func (r memInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := r.s.invoices[id]
	if !ok {
		return nil, nil
	}
	copia := *inv
	return &copia, nil
}

func (r memInvoiceRepo) Update(inv *entity.Invoice) error {
	existing, ok := r.s.invoices[inv.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Amt, existing.Paid, existing.PaidDate = inv.Amt, inv.Paid, inv.PaidDate
	return nil
}

func (r memInvoiceRepo) Delete(id int64) error {
	if _, ok := r.s.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.invoices, id)
	return nil
}

func (r memInvoiceRepo) ListIDsByCompany(compCode string) ([]int64, error) {
	var ids []int64
	for _, inv := range r.s.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, inv.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

type memIndustryRepo struct{ s *memStore }

func (r memIndustryRepo) ListWithCompanies() ([]*entity.IndustryCompanyRow, error) {
	var rows []*entity.IndustryCompanyRow
	for code, name := range r.s.industries {
		linked := false
		for _, l := range r.s.industryLinks {
			if l.IndCode == code {
				linked = true
				comp := l.CompCode
				rows = append(rows, &entity.IndustryCompanyRow{Code: code, Industry: name, CompCode: &comp})
			}
		}
		if !linked {
			rows = append(rows, &entity.IndustryCompanyRow{Code: code, Industry: name})
		}
	}
	return rows, nil
}

func (r memIndustryRepo) Create(ind *entity.Industry) error {
	if _, ok := r.s.industries[ind.Code]; ok {
		return fmt.Errorf("%w: industria '%s'", domain.ErrDuplicate, ind.Code)
	}
	r.s.industries[ind.Code] = ind.Industry
	return nil
}

func (r memIndustryRepo) ListCodes() ([]string, error) {
	var codes []string
	for code := range r.s.industries {
		codes = append(codes, code)
	}
	return codes, nil
}

func (r memIndustryRepo) CreateLink(link *entity.IndustryCompany) error {
	for _, l := range r.s.industryLinks {
		if l == *link {
			return fmt.Errorf("insert industry link: duplicate key value violates unique constraint")
		}
	}
	r.s.industryLinks = append(r.s.industryLinks, *link)
	r.s.companyInds[link.CompCode] = append(r.s.companyInds[link.CompCode], r.s.industries[link.IndCode])
	return nil
}

// buildTestApp levanta la app Fiber completa (router + ErrorHandler) sobre
// los repos en memoria.
func buildTestApp(t *testing.T) (*fiber.App, *memStore) {
	t.Helper()
	store := newMemStore()
	companyRepo := memCompanyRepo{store}
	invoiceRepo := memInvoiceRepo{store}
	industryRepo := memIndustryRepo{store}

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler})
	apphttp.Router(app, apphttp.RouterDeps{
		CompanyUC:  usecase.NewCompanyUseCase(companyRepo, invoiceRepo),
		InvoiceUC:  usecase.NewInvoiceUseCase(invoiceRepo, companyRepo),
		IndustryUC: usecase.NewIndustryUseCase(industryRepo, companyRepo),
		InvoicePDF: billing.NewPDFUseCase(invoiceRepo, companyRepo, infrapdf.NewMarotoPDFGenerator()),
	})
	return app, store
}
