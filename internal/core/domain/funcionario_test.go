package domain_test

import (
	"testing"

	"github.com/gestorobras/gestor_diarias_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestFuncionarioTipoCanConvert(t *testing.T) {
	assert.True(t, domain.FuncionarioTreinamento.CanConvert())
	assert.False(t, domain.FuncionarioAutonomo.CanConvert())
}

func TestFuncionarioTipoValid(t *testing.T) {
	assert.True(t, domain.FuncionarioTreinamento.Valid())
	assert.True(t, domain.FuncionarioAutonomo.Valid())
	assert.False(t, domain.FuncionarioTipo("CLT").Valid())
}
