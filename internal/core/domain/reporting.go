package domain

import "github.com/shopspring/decimal"

// RelatorioDiarias is the aggregate over a filtered set of diarias.
// An empty match set yields zero values, never nulls.
type RelatorioDiarias struct {
	TotalValor   decimal.Decimal `json:"totalValor"`
	TotalDiarias int64           `json:"totalDiarias"`
}
