package dto

// CreateEmpresaRequest carries the fields accepted when registering a company.
type CreateEmpresaRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CNPJ     string `json:"cnpj" binding:"required"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Status   string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}

// UpdateEmpresaRequest is a merge-patch: only non-nil fields are applied.
type UpdateEmpresaRequest struct {
	Nome     *string `json:"nome"`
	CNPJ     *string `json:"cnpj"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone"`
	Status   *string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
}

// ListEmpresasParams are the supported listing filters.
type ListEmpresasParams struct {
	Status string `form:"status" binding:"omitempty,oneof=Ativo Inativo"`
}
