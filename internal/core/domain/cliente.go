package domain

// ClienteStatus is the lifecycle status of a job-site.
type ClienteStatus string

const (
	ClienteAtivo     ClienteStatus = "Ativo"
	ClienteInativo   ClienteStatus = "Inativo"
	ClienteConcluido ClienteStatus = "Concluído"
)

// Valid reports whether s is a known status value.
func (s ClienteStatus) Valid() bool {
	return s == ClienteAtivo || s == ClienteInativo || s == ClienteConcluido
}

// Cliente is a client job-site, owned by exactly one Empresa.
type Cliente struct {
	ID        int64         `json:"id"`
	Nome      string        `json:"nome"`
	CNPJ      string        `json:"cnpj,omitempty"`
	Endereco  string        `json:"endereco,omitempty"`
	Telefone  string        `json:"telefone,omitempty"`
	Status    ClienteStatus `json:"status"`
	EmpresaID int64         `json:"empresaId"`
	Timestamps
}

// ClienteWithEmpresa is a Cliente joined with its owning company's name,
// as the listing and detail endpoints return it.
type ClienteWithEmpresa struct {
	Cliente
	EmpresaNome string `json:"empresaNome"`
}
