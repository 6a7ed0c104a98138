package usecase_test

import (
	"fmt"
	"slices"
	"time"

	"github.com/jhoicas/biztime-api/internal/domain"
	"github.com/jhoicas/biztime-api/internal/domain/entity"
	"github.com/jhoicas/biztime-api/internal/domain/repository"
)

// Fakes en memoria de los puertos de persistencia. Reproducen el contrato de
// los adaptadores de PostgreSQL (nil para "no existe", ErrNotFound en
// update/delete sin filas) sin tocar la base.

// ── CompanyRepository ─────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies  map[string]*entity.Company
	industries map[string][]string // comp_code -> nombres de industria
}

var _ repository.CompanyRepository = (*fakeCompanyRepo)(nil)

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{
		companies:  make(map[string]*entity.Company),
		industries: make(map[string][]string),
	}
}

func (f *fakeCompanyRepo) List() ([]*entity.Company, error) {
	var list []*entity.Company
	for _, c := range f.companies {
		copia := *c
		list = append(list, &copia)
	}
	slices.SortFunc(list, func(a, b *entity.Company) int {
		return cmpStrings(a.Code, b.Code)
	})
	return list, nil
}

func (f *fakeCompanyRepo) Create(company *entity.Company) error {
	if _, ok := f.companies[company.Code]; ok {
		return fmt.Errorf("%w: empresa con código '%s' ya existe", domain.ErrDuplicate, company.Code)
	}
	copia := *company
	f.companies[company.Code] = &copia
	return nil
}

func (f *fakeCompanyRepo) GetByCode(code string) (*entity.Company, error) {
	c, ok := f.companies[code]
	if !ok {
		return nil, nil
	}
	copia := *c
	return &copia, nil
}

func (f *fakeCompanyRepo) GetByCodeWithIndustries(code string) (*entity.Company, []string, error) {
	c, ok := f.companies[code]
	if !ok {
		return nil, nil, nil
	}
	copia := *c
	return &copia, slices.Clone(f.industries[code]), nil
}

func (f *fakeCompanyRepo) Update(company *entity.Company) error {
	existing, ok := f.companies[company.Code]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Name = company.Name
	existing.Description = company.Description
	return nil
}

func (f *fakeCompanyRepo) Delete(code string) error {
	if _, ok := f.companies[code]; !ok {
		return domain.ErrNotFound
	}
	delete(f.companies, code)
	delete(f.industries, code)
	return nil
}

func (f *fakeCompanyRepo) ListCodes() ([]string, error) {
	var codes []string
	for code := range f.companies {
		codes = append(codes, code)
	}
	return codes, nil
}

// ── InvoiceRepository ─────────────────────────────────────────────────────────

type fakeInvoiceRepo struct {
	seq      int64
	invoices map[int64]*entity.Invoice
	addDate  time.Time
}

var _ repository.InvoiceRepository = (*fakeInvoiceRepo)(nil)

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{
		invoices: make(map[int64]*entity.Invoice),
		addDate:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeInvoiceRepo) List() ([]*entity.Invoice, error) {
	var list []*entity.Invoice
	for _, inv := range f.invoices {
		copia := *inv
		list = append(list, &copia)
	}
	slices.SortFunc(list, func(a, b *entity.Invoice) int { return int(a.ID - b.ID) })
	return list, nil
}

func (f *fakeInvoiceRepo) Create(invoice *entity.Invoice) error {
	f.seq++
	invoice.ID = f.seq
	invoice.Paid = false
	invoice.PaidDate = nil
	invoice.AddDate = f.addDate
	copia := *invoice
	f.invoices[invoice.ID] = &copia
	return nil
}

func (f *fakeInvoiceRepo) GetByID(id int64) (*entity.Invoice, error) {
	inv, ok := f.invoices[id]
	if !ok {
		return nil, nil
	}
	copia := *inv
	return &copia, nil
}

func (f *fakeInvoiceRepo) Update(invoice *entity.Invoice) error {
	existing, ok := f.invoices[invoice.ID]
	if !ok {
		return domain.ErrNotFound
	}
	existing.Amt = invoice.Amt
	existing.Paid = invoice.Paid
	existing.PaidDate = invoice.PaidDate
	return nil
}

func (f *fakeInvoiceRepo) Delete(id int64) error {
	if _, ok := f.invoices[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.invoices, id)
	return nil
}

func (f *fakeInvoiceRepo) ListIDsByCompany(compCode string) ([]int64, error) {
	var ids []int64
	for _, inv := range f.invoices {
		if inv.CompCode == compCode {
			ids = append(ids, inv.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

// ── IndustryRepository ────────────────────────────────────────────────────────

type fakeIndustryRepo struct {
	industries map[string]string // code -> nombre
	links      []entity.IndustryCompany
}

var _ repository.IndustryRepository = (*fakeIndustryRepo)(nil)

func newFakeIndustryRepo() *fakeIndustryRepo {
	return &fakeIndustryRepo{industries: make(map[string]string)}
}

func (f *fakeIndustryRepo) ListWithCompanies() ([]*entity.IndustryCompanyRow, error) {
	var rows []*entity.IndustryCompanyRow
	for code, name := range f.industries {
		linked := false
		for _, l := range f.links {
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
	slices.SortFunc(rows, func(a, b *entity.IndustryCompanyRow) int {
		return cmpStrings(a.Code, b.Code)
	})
	return rows, nil
}

func (f *fakeIndustryRepo) Create(industry *entity.Industry) error {
	if _, ok := f.industries[industry.Code]; ok {
		return fmt.Errorf("%w: industria con código '%s' ya existe", domain.ErrDuplicate, industry.Code)
	}
	f.industries[industry.Code] = industry.Industry
	return nil
}

func (f *fakeIndustryRepo) ListCodes() ([]string, error) {
	var codes []string
	for code := range f.industries {
		codes = append(codes, code)
	}
	return codes, nil
}

func (f *fakeIndustryRepo) CreateLink(link *entity.IndustryCompany) error {
	for _, l := range f.links {
		if l == *link {
			// Misma señal que la PK compuesta de la base.
			return fmt.Errorf("insert industry link: duplicate key value violates unique constraint")
		}
	}
	f.links = append(f.links, *link)
	return nil
}

func cmpStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
