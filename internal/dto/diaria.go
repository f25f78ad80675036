package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiariaDateLayout is the wire format for diaria dates.
const DiariaDateLayout = "2006-01-02"

// CreateDiariaRequest carries the fields accepted when logging a daily entry.
type CreateDiariaRequest struct {
	Data          string          `json:"data" binding:"required,datetime=2006-01-02"`
	Valor         decimal.Decimal `json:"valor" binding:"required"`
	Status        string          `json:"status" binding:"omitempty,oneof=Pendente Aprovado Cancelado"`
	Observacao    string          `json:"observacao"`
	FuncionarioID int64           `json:"funcionarioId" binding:"required"`
	ClienteID     int64           `json:"clienteId" binding:"required"`
}

// UpdateDiariaRequest is a merge-patch: only non-nil fields are applied.
type UpdateDiariaRequest struct {
	Data          *string          `json:"data" binding:"omitempty,datetime=2006-01-02"`
	Valor         *decimal.Decimal `json:"valor"`
	Status        *string          `json:"status" binding:"omitempty,oneof=Pendente Aprovado Cancelado"`
	Observacao    *string          `json:"observacao"`
	FuncionarioID *int64           `json:"funcionarioId"`
	ClienteID     *int64           `json:"clienteId"`
}

// ListDiariasParams are the supported listing and report filters.
// The date range is inclusive on both ends.
type ListDiariasParams struct {
	EmpresaID     *int64     `form:"empresaId"`
	ClienteID     *int64     `form:"clienteId"`
	FuncionarioID *int64     `form:"funcionarioId"`
	Status        string     `form:"status" binding:"omitempty,oneof=Pendente Aprovado Cancelado"`
	DataInicio    *time.Time `form:"dataInicio" time_format:"2006-01-02"`
	DataFim       *time.Time `form:"dataFim" time_format:"2006-01-02"`
}
