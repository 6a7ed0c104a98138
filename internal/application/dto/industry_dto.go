package dto

// CreateIndustryRequest entrada para crear una industria.
type CreateIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryResponse salida de una industria.
type IndustryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

// IndustryEnvelope sobre {"industry":{...}}.
type IndustryEnvelope struct {
	Industry IndustryResponse `json:"industry"`
}

// IndustryCompanyItem fila del listado industria↔empresa. CompCode es nil
// para industrias sin empresas asociadas (LEFT JOIN).
type IndustryCompanyItem struct {
	Code     string  `json:"code"`
	Industry string  `json:"industry"`
	CompCode *string `json:"comp_code"`
}

// IndustryCompanyListResponse sobre {"industries_companies":[...]}.
type IndustryCompanyListResponse struct {
	IndustriesCompanies []IndustryCompanyItem `json:"industries_companies"`
}

// CreateIndustryLinkRequest entrada para asociar una industria a una empresa.
type CreateIndustryLinkRequest struct {
	IndCode  string `json:"ind_code"`
	CompCode string `json:"comp_code"`
}

// IndustryLinkResponse par persistido de la asociación.
type IndustryLinkResponse struct {
	IndCode  string `json:"ind_code"`
	CompCode string `json:"comp_code"`
}

// IndustryLinkEnvelope sobre {"industry_company":{...}}.
type IndustryLinkEnvelope struct {
	IndustryCompany IndustryLinkResponse `json:"industry_company"`
}
