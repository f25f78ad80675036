package domain_test

import (
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestDiariaStatusTransitions(t *testing.T) {
	testCases := []struct {
		name    string
		from    domain.DiariaStatus
		to      domain.DiariaStatus
		allowed bool
	}{
		{"pendente to aprovado", domain.DiariaPendente, domain.DiariaAprovado, true},
		{"pendente to cancelado", domain.DiariaPendente, domain.DiariaCancelado, true},
		{"aprovado to pendente", domain.DiariaAprovado, domain.DiariaPendente, false},
		{"aprovado to cancelado", domain.DiariaAprovado, domain.DiariaCancelado, false},
		{"cancelado to pendente", domain.DiariaCancelado, domain.DiariaPendente, false},
		{"cancelado to aprovado", domain.DiariaCancelado, domain.DiariaAprovado, false},
		{"pendente to pendente", domain.DiariaPendente, domain.DiariaPendente, true},
		{"aprovado to aprovado", domain.DiariaAprovado, domain.DiariaAprovado, true},
		{"cancelado to cancelado", domain.DiariaCancelado, domain.DiariaCancelado, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestDiariaStatusValid(t *testing.T) {
	assert.True(t, domain.DiariaPendente.Valid())
	assert.True(t, domain.DiariaAprovado.Valid())
	assert.True(t, domain.DiariaCancelado.Valid())
	assert.False(t, domain.DiariaStatus("Pago").Valid())
	assert.False(t, domain.DiariaStatus("").Valid())
}
