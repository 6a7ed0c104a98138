package entity

// Company representa una empresa facturable. El code es el identificador
// público (slug derivado del nombre al crearla).
type Company struct {
	Code        string
	Name        string
	Description string
}
