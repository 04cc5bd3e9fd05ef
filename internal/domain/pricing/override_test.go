package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Máquina de estados do override de preço: auto ⇄ manual.
// ──────────────────────────────────────────────────────────────────────────────

func TestOverride_ZeroValueEstaEmAuto(t *testing.T) {
	var o pricing.Override

	assert.False(t, o.Manual())
	assert.True(t, o.Resolve(dec(320)).Equal(dec(320)), "em auto, Resolve devolve o calculado")
}

func TestOverride_SetCongelaOValor(t *testing.T) {
	var o pricing.Override
	o.Set(dec(250))

	assert.True(t, o.Manual())
	assert.True(t, o.Resolve(dec(320)).Equal(dec(250)), "em manual, o calculado é ignorado")
	assert.True(t, o.Resolve(dec(999)).Equal(dec(250)), "o valor permanece congelado entre recálculos")
}

// Qualquer mudança de entrada que alimenta o cálculo derruba o override:
// o vendedor mexeu na configuração, então o preço volta a acompanhar.
func TestOverride_MudancaDeEntradaVoltaParaAuto(t *testing.T) {
	var o pricing.Override
	o.Set(dec(250))
	o.InputChanged()

	assert.False(t, o.Manual())
	assert.True(t, o.Resolve(dec(320)).Equal(dec(320)))
}

func TestOverride_ResetExplicito(t *testing.T) {
	var o pricing.Override
	o.Set(dec(250))
	o.Reset()

	assert.False(t, o.Manual())
}

func TestOverride_ValorNegativoSaneado(t *testing.T) {
	var o pricing.Override
	o.Set(dec(-100))

	assert.True(t, o.Manual())
	assert.True(t, o.Resolve(dec(320)).IsZero(), "override negativo vira zero, não volta ao calculado")
}

func TestOverride_SetDepoisDeResetFuncionaDeNovo(t *testing.T) {
	var o pricing.Override
	o.Set(dec(250))
	o.Reset()
	o.Set(dec(400))

	assert.True(t, o.Manual())
	assert.True(t, o.Resolve(dec(320)).Equal(dec(400)))
}
