package domain

// EmpresaStatus is the lifecycle status of a contracting company.
type EmpresaStatus string

const (
	EmpresaAtivo   EmpresaStatus = "Ativo"
	EmpresaInativo EmpresaStatus = "Inativo"
)

// Valid reports whether s is a known status value.
func (s EmpresaStatus) Valid() bool {
	return s == EmpresaAtivo || s == EmpresaInativo
}

// Empresa is a contracting company. It owns clientes and funcionarios.
type Empresa struct {
	ID       int64         `json:"id"`
	Nome     string        `json:"nome"`
	CNPJ     string        `json:"cnpj"`
	Endereco string        `json:"endereco,omitempty"`
	Telefone string        `json:"telefone,omitempty"`
	Status   EmpresaStatus `json:"status"`
	Timestamps
}
