package dto

// CreateCompanyRequest entrada para crear una empresa. El code no se envía:
// se deriva del nombre (slug).
type CreateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateCompanyRequest entrada para reemplazar name y description.
type UpdateCompanyRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanySummary fila del listado de empresas.
type CompanySummary struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// CompanyListResponse sobre del listado: {"companies":[...]}.
type CompanyListResponse struct {
	Companies []CompanySummary `json:"companies"`
}

// CompanyResponse salida de una empresa.
type CompanyResponse struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CompanyEnvelope sobre {"company":{...}}.
type CompanyEnvelope struct {
	Company CompanyResponse `json:"company"`
}

// CompanyDetail vista compuesta de una empresa: sus campos propios más las
// industrias asociadas y los ids de sus facturas. Las listas serializan como
// [] cuando están vacías, nunca null.
type CompanyDetail struct {
	Code        string   `json:"code"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Industries  []string `json:"industries"`
	Invoices    []int64  `json:"invoices"`
}

// CompanyDetailEnvelope sobre {"company":{...}} de la vista compuesta.
type CompanyDetailEnvelope struct {
	Company CompanyDetail `json:"company"`
}
