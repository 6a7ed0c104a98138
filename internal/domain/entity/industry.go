package entity

// Industry representa un sector/industria al que pueden pertenecer empresas.
type Industry struct {
	Code     string
	Industry string // nombre para mostrar
}

// IndustryCompany es la asociación muchos-a-muchos industria↔empresa.
// No tiene atributos propios.
type IndustryCompany struct {
	IndCode  string
	CompCode string
}

// IndustryCompanyRow es una fila del listado de industrias con sus empresas
// (LEFT JOIN: CompCode es nil para industrias sin empresas asociadas).
type IndustryCompanyRow struct {
	Code     string
	Industry string
	CompCode *string
}
