package dto

// CreateClienteRequest carries the fields accepted when registering a job-site.
type CreateClienteRequest struct {
	Nome      string `json:"nome" binding:"required"`
	CNPJ      string `json:"cnpj"`
	Endereco  string `json:"endereco"`
	Telefone  string `json:"telefone"`
	Status    string `json:"status" binding:"omitempty,oneof=Ativo Inativo Concluído"`
	EmpresaID int64  `json:"empresaId" binding:"required"`
}

// UpdateClienteRequest is a merge-patch: only non-nil fields are applied.
type UpdateClienteRequest struct {
	Nome      *string `json:"nome"`
	CNPJ      *string `json:"cnpj"`
	Endereco  *string `json:"endereco"`
	Telefone  *string `json:"telefone"`
	Status    *string `json:"status" binding:"omitempty,oneof=Ativo Inativo Concluído"`
	EmpresaID *int64  `json:"empresaId"`
}

// ListClientesParams are the supported listing filters.
type ListClientesParams struct {
	EmpresaID *int64 `form:"empresaId"`
	Status    string `form:"status" binding:"omitempty,oneof=Ativo Inativo Concluído"`
}
