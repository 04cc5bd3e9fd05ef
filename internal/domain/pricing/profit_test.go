package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crmpartner/proposal-api/internal/domain"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Divisão de lucro por modelo de parceria
//
// A assimetria entre os ramos é contratual: white label subtrai o custo
// interno; revenue share aplica 70% sobre o PREÇO e ignora o custo.
// ──────────────────────────────────────────────────────────────────────────────

func TestProfit_WhiteLabelSubtraiCusto(t *testing.T) {
	split, err := pricing.Profit(catalog.PartnershipWhiteLabel, dec(200), dec(100))
	require.NoError(t, err)

	assert.True(t, split.Profit.Equal(dec(100)))
	assert.True(t, split.PlatformFee.IsZero(), "white label não paga taxa de plataforma")
}

func TestProfit_RevenueShareSetentaPorCento(t *testing.T) {
	split, err := pricing.Profit(catalog.PartnershipRevenueShare, dec(200), dec(100))
	require.NoError(t, err)

	assert.True(t, split.Profit.Equal(dec(140)), "70%% de 200, veio %s", split.Profit)
	assert.True(t, split.PlatformFee.Equal(dec(60)))
}

// O custo interno NÃO entra no ramo revenue share: mudar o custo não pode
// mudar o lucro do parceiro.
func TestProfit_RevenueShareIgnoraCusto(t *testing.T) {
	comCusto, err1 := pricing.Profit(catalog.PartnershipRevenueShare, dec(200), dec(150))
	semCusto, err2 := pricing.Profit(catalog.PartnershipRevenueShare, dec(200), decimal.Zero)
	require.NoError(t, err1)
	require.NoError(t, err2)

	assert.True(t, comCusto.Profit.Equal(semCusto.Profit))
}

// Lei de conservação do revenue share: lucro + taxa = preço, sem resíduo de
// arredondamento mesmo com preços que não dividem limpo.
func TestProfit_LeiDeConservacao(t *testing.T) {
	for _, price := range []int64{160, 199, 333, 890, 1999} {
		split, err := pricing.Profit(catalog.PartnershipRevenueShare, dec(price), decimal.Zero)
		require.NoError(t, err)

		total := split.Profit.Add(split.PlatformFee)
		assert.True(t, total.Equal(dec(price)), "preço %d: lucro %s + taxa %s ≠ preço", price, split.Profit, split.PlatformFee)
	}
}

func TestProfit_WhiteLabelPodeSerNegativo(t *testing.T) {
	// Vender abaixo do custo é permitido (a validação de piso é consultiva);
	// o lucro simplesmente sai negativo.
	split, err := pricing.Profit(catalog.PartnershipWhiteLabel, dec(100), dec(160))
	require.NoError(t, err)
	assert.True(t, split.Profit.Equal(dec(-60)))
}

func TestProfit_ModeloDesconhecidoFalha(t *testing.T) {
	_, err := pricing.Profit("franquia", dec(200), dec(100))
	assert.ErrorIs(t, err, domain.ErrUnknownPartnershipModel)
}

// ── Margem ────────────────────────────────────────────────────────────────────

func TestMargin_Percentual(t *testing.T) {
	assert.Equal(t, int64(50), pricing.Margin(dec(100), dec(200)))
	assert.Equal(t, int64(33), pricing.Margin(dec(100), dec(300)))
}

func TestMargin_PrecoZeroSemDivisao(t *testing.T) {
	assert.Equal(t, int64(0), pricing.Margin(dec(100), decimal.Zero))
	assert.Equal(t, int64(0), pricing.Margin(dec(100), dec(-10)))
}

// ── Piso de mensalidade (consultivo) ──────────────────────────────────────────

func TestValidateMinimumPrice_AbaixoDoPiso(t *testing.T) {
	check := pricing.ValidateMinimumPrice(dec(150))

	assert.False(t, check.Valid)
	assert.True(t, check.Deficit.Equal(dec(10)), "faltam 10 até o piso de 160")
	assert.NotEmpty(t, check.Message)
}

func TestValidateMinimumPrice_NoPisoExatoValido(t *testing.T) {
	check := pricing.ValidateMinimumPrice(dec(160))

	assert.True(t, check.Valid)
	assert.True(t, check.Deficit.IsZero())
	assert.Empty(t, check.Message)
}

func TestValidateMinimumPrice_AcimaDoPisoSemDeficit(t *testing.T) {
	check := pricing.ValidateMinimumPrice(dec(890))
	assert.True(t, check.Valid)
	assert.True(t, check.Deficit.IsZero(), "déficit nunca sai negativo")
}
