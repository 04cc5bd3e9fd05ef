package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/pkg/brl"
)

// Profit divisão do preço de venda conforme o modelo de parceria.
//
// White label: lucro = preço − custo interno, sem taxa de plataforma.
// Revenue share: lucro = preço × catalog.PartnerShareRate e o restante é taxa
// da plataforma — o custo interno não é subtraído nesse ramo. A assimetria é
// contratual e vale a lei de conservação lucro + taxa = preço.
func Profit(model catalog.PartnershipModel, salePrice, internalCost decimal.Decimal) (ProfitSplit, error) {
	price := clampNonNegative(salePrice)

	switch model {
	case catalog.PartnershipWhiteLabel:
		return ProfitSplit{
			Profit:      price.Sub(clampNonNegative(internalCost)),
			PlatformFee: decimal.Zero,
		}, nil
	case catalog.PartnershipRevenueShare:
		profit := price.Mul(catalog.PartnerShareRate)
		return ProfitSplit{
			Profit:      profit,
			PlatformFee: price.Sub(profit),
		}, nil
	default:
		return ProfitSplit{}, domain.ErrUnknownPartnershipModel
	}
}

// Margin margem percentual arredondada; 0 quando o preço não é positivo
// (guarda de divisão por zero).
func Margin(profit, price decimal.Decimal) int64 {
	if !price.IsPositive() {
		return 0
	}
	return profit.Div(price).Mul(hundred).Round(0).IntPart()
}

// ValidateMinimumPrice checagem consultiva do piso de mensalidade: devolve a
// validade e o déficit até catalog.MinMonthlyCost (zero quando válido). Não
// bloqueia cálculo nem envio da proposta.
func ValidateMinimumPrice(price decimal.Decimal) MinimumPriceCheck {
	deficit := catalog.MinMonthlyCost.Sub(price)
	if deficit.IsNegative() {
		deficit = decimal.Zero
	}
	check := MinimumPriceCheck{
		Valid:   !deficit.IsPositive(),
		Deficit: deficit,
	}
	if !check.Valid {
		check.Message = "mensalidade abaixo do custo mínimo de operação (" +
			brl.Format(catalog.MinMonthlyCost) + "); faltam " + brl.Format(deficit)
	}
	return check
}
