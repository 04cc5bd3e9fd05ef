package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// ROI projeta a receita recuperada pelo funil de conversão.
//
// A melhoria é relativa sobre a taxa atual: taxa 5% com melhoria 20% vira 6%.
// Entradas negativas são saneadas para zero e a taxa atual é limitada a 100.
// Valores monetários saem arredondados à unidade; a taxa nova com 1 casa.
func ROI(in ROIInputs) ROIOutputs {
	ticket := clampNonNegative(in.TicketMedio)
	leads := clampNonNegative(in.LeadsPerMonth)
	rate := clampNonNegative(in.CurrentConversionRate)
	if rate.GreaterThan(hundred) {
		rate = hundred
	}
	improvement := clampNonNegative(in.ConversionImprovement)

	currentRevenue := leads.Mul(rate).Div(hundred).Mul(ticket)

	newRate := rate.Mul(decimal.NewFromInt(1).Add(improvement.Div(hundred)))
	projectedRevenue := leads.Mul(newRate).Div(hundred).Mul(ticket)

	recovered := projectedRevenue.Sub(currentRevenue)

	return ROIOutputs{
		CurrentRevenue:    currentRevenue.Round(0),
		ProjectedRevenue:  projectedRevenue.Round(0),
		RecoveredRevenue:  recovered.Round(0),
		NewConversionRate: newRate.Round(1),
	}
}

// ValuePricing sugere um preço ancorado no valor gerado: uma fatia
// (catalog.ValueSharePercent) da receita recuperada mensal, arredondada para
// cima ao múltiplo de 10. Quando a sugestão supera o preço cost-plus em mais
// de catalog.HighTicketThresholdPercent, a oportunidade é de alto ticket.
func ValuePricing(costPlusPrice, recoveredRevenue decimal.Decimal) ValuePricingResult {
	suggested := roundUpToTen(
		clampNonNegative(recoveredRevenue).Mul(catalog.ValueSharePercent).Div(hundred),
	)

	var diffPercent int64
	if costPlusPrice.IsPositive() {
		diffPercent = suggested.Sub(costPlusPrice).
			Div(costPlusPrice).Mul(hundred).
			Round(0).IntPart()
	}

	return ValuePricingResult{
		CostPlusPrice:           costPlusPrice,
		ValueSuggestedPrice:     suggested,
		PriceDifferencePercent:  diffPercent,
		IsHighTicketOpportunity: diffPercent > catalog.HighTicketThresholdPercent,
	}
}
