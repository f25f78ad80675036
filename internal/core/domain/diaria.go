package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DiariaStatus is the lifecycle status of a daily work entry.
type DiariaStatus string

const (
	DiariaPendente  DiariaStatus = "Pendente"
	DiariaAprovado  DiariaStatus = "Aprovado"
	DiariaCancelado DiariaStatus = "Cancelado"
)

// Valid reports whether s is a known status value.
func (s DiariaStatus) Valid() bool {
	return s == DiariaPendente || s == DiariaAprovado || s == DiariaCancelado
}

// diariaTransitions is the transition table for status changes through
// update. Delete bypasses it and always forces Cancelado.
var diariaTransitions = map[DiariaStatus]map[DiariaStatus]bool{
	DiariaPendente: {
		DiariaAprovado:  true,
		DiariaCancelado: true,
	},
}

// CanTransitionTo reports whether an update may move the status from s to
// next. Writing the current value back is always allowed.
func (s DiariaStatus) CanTransitionTo(next DiariaStatus) bool {
	if s == next {
		return true
	}
	return diariaTransitions[s][next]
}

// Diaria is a daily work/pay entry, tied to a Funcionario and a Cliente.
type Diaria struct {
	ID            int64           `json:"id"`
	Data          time.Time       `json:"data"`
	Valor         decimal.Decimal `json:"valor"`
	Status        DiariaStatus    `json:"status"`
	Observacao    string          `json:"observacao,omitempty"`
	FuncionarioID int64           `json:"funcionarioId"`
	ClienteID     int64           `json:"clienteId"`
	Timestamps
}

// DiariaWithNames is a Diaria joined with the names the listing screens show.
type DiariaWithNames struct {
	Diaria
	FuncionarioNome string `json:"funcionarioNome"`
	ClienteNome     string `json:"clienteNome"`
	EmpresaNome     string `json:"empresaNome"`
}

// DiariaFilter narrows diaria listings and the report aggregation.
// Nil fields are not applied. EmpresaID filters through the cliente join.
// The date range is inclusive on both ends; a single bound leaves the other
// end open.
type DiariaFilter struct {
	EmpresaID     *int64
	ClienteID     *int64
	FuncionarioID *int64
	Status        *DiariaStatus
	DataInicio    *time.Time
	DataFim       *time.Time
}
