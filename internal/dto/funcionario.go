package dto

// CreateFuncionarioRequest carries the fields accepted when registering a worker.
type CreateFuncionarioRequest struct {
	Nome      string `json:"nome" binding:"required"`
	CPF       string `json:"cpf" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	Telefone  string `json:"telefone"`
	Tipo      string `json:"tipo" binding:"omitempty,oneof=Treinamento Autônomo"`
	Status    string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
	EmpresaID int64  `json:"empresaId" binding:"required"`
}

// UpdateFuncionarioRequest is a merge-patch: only non-nil fields are applied.
// Tipo is deliberately absent: the only tipo change goes through the convert
// action.
type UpdateFuncionarioRequest struct {
	Nome      *string `json:"nome"`
	CPF       *string `json:"cpf"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Telefone  *string `json:"telefone"`
	Status    *string `json:"status" binding:"omitempty,oneof=Ativo Inativo"`
	EmpresaID *int64  `json:"empresaId"`
}

// ListFuncionariosParams are the supported listing filters.
type ListFuncionariosParams struct {
	EmpresaID *int64 `form:"empresaId"`
	Status    string `form:"status" binding:"omitempty,oneof=Ativo Inativo"`
	Tipo      string `form:"tipo" binding:"omitempty,oneof=Treinamento Autônomo"`
}
