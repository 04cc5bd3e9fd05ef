package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

var (
	ten     = decimal.NewFromInt(10)
	hundred = decimal.NewFromInt(100)
)

// clampNonNegative saneia entradas numéricas: negativo vira zero.
func clampNonNegative(v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		return decimal.Zero
	}
	return v
}

// roundUpToTen arredonda para cima ao próximo múltiplo de 10. Política de
// "nunca perder dinheiro no arredondamento": sempre teto, nunca o mais
// próximo. Múltiplos exatos de 10 ficam como estão.
func roundUpToTen(v decimal.Decimal) decimal.Decimal {
	return v.Div(ten).Ceil().Mul(ten)
}

// applyMonthlyFloor aplica o piso de sustentabilidade da mensalidade.
func applyMonthlyFloor(v decimal.Decimal) decimal.Decimal {
	return decimal.Max(v, catalog.MinMonthlyCost)
}

// ComplexityPercent soma dos percentuais dos fatores selecionados
// (ex.: urgência 15 + presencial 10 = 25).
func ComplexityPercent(sel ComplexitySelection) decimal.Decimal {
	total := decimal.Zero
	for _, f := range catalog.ComplexityFactors {
		if sel.Selected(f.ID) {
			total = total.Add(decimal.NewFromInt(f.Percent))
		}
	}
	return total
}

// ComplexityFlatTotal soma dos adicionais fixos (R$) dos fatores
// selecionados, usado nas variantes de preço flexível.
func ComplexityFlatTotal(sel ComplexitySelection) decimal.Decimal {
	total := decimal.Zero
	for _, f := range catalog.ComplexityFactors {
		if sel.Selected(f.ID) {
			total = total.Add(f.FlatCost)
		}
	}
	return total
}

// MarkupPrice variante clássica (cost-plus):
//
//	ceil(base × (1+markup/100) × (1+complexidade/100) / 10) × 10
//
// com piso de mensalidade aplicado depois do arredondamento.
func MarkupPrice(baseCost, markupPercent, complexityPercent decimal.Decimal) decimal.Decimal {
	base := clampNonNegative(baseCost)
	markup := clampNonNegative(markupPercent)
	complexity := clampNonNegative(complexityPercent)

	withMarkup := base.Mul(decimal.NewFromInt(1).Add(markup.Div(hundred)))
	withComplexity := withMarkup.Mul(decimal.NewFromInt(1).Add(complexity.Div(hundred)))

	return applyMonthlyFloor(roundUpToTen(withComplexity))
}

// moduleCosts adicionais fixos de módulo cobrados do cliente nas variantes
// de preço flexível (IA e Conversões; IA condicionada ao WhatsApp).
func moduleCosts(features FeatureSelection) decimal.Decimal {
	total := decimal.Zero
	if features.AI && features.WhatsApp {
		total = total.Add(catalog.AIAgentCost)
	}
	if features.Conversions {
		total = total.Add(catalog.ConversionsCost)
	}
	return total
}

// PerUserPrice variante por assento: preço da banda de volume × assentos,
// mais módulos e complexidade em R$, com piso de mensalidade. Quantidades
// acima da última banda pagam o preço da última banda (clamp), nunca erro.
func PerUserPrice(features FeatureSelection, userCount int, complexity ComplexitySelection) decimal.Decimal {
	if userCount < 0 {
		userCount = 0
	}
	band := catalog.BandForUsers(userCount)
	seats := band.PricePerUser.Mul(decimal.NewFromInt(int64(userCount)))
	total := seats.Add(moduleCosts(features)).Add(ComplexityFlatTotal(complexity))
	return applyMonthlyFloor(total)
}

// FixedTierPrice variante de pacote fechado: preço pré-definido da faixa,
// mais módulos e complexidade em R$, com piso.
func FixedTierPrice(tier catalog.UserTier, features FeatureSelection, complexity ComplexitySelection) decimal.Decimal {
	total := tier.FixedMonthlyPrice.Add(moduleCosts(features)).Add(ComplexityFlatTotal(complexity))
	return applyMonthlyFloor(total)
}

// HybridPrice variante híbrida: preço base cobre catalog.HybridBaseUsers
// assentos; cada assento extra soma catalog.HybridExtraUserPrice. Módulos e
// complexidade em R$ somam depois; piso no final.
func HybridPrice(features FeatureSelection, userCount int, complexity ComplexitySelection) decimal.Decimal {
	if userCount < 0 {
		userCount = 0
	}
	extra := userCount - catalog.HybridBaseUsers
	if extra < 0 {
		extra = 0
	}
	total := catalog.HybridBasePrice.
		Add(catalog.HybridExtraUserPrice.Mul(decimal.NewFromInt(int64(extra)))).
		Add(moduleCosts(features)).
		Add(ComplexityFlatTotal(complexity))
	return applyMonthlyFloor(total)
}

// MonthlyPrice despacha o cálculo da mensalidade pelo modelo de
// precificação. Modelo desconhecido é bug de programação: falha rápido.
func MonthlyPrice(
	model catalog.PricingModel,
	features FeatureSelection,
	userCount int,
	tierID string,
	markupPercent decimal.Decimal,
	complexity ComplexitySelection,
) (decimal.Decimal, error) {
	switch model {
	case catalog.ModelMarkup:
		base := InternalCost(features, userCount)
		return MarkupPrice(base, markupPercent, ComplexityPercent(complexity)), nil
	case catalog.ModelPerUser:
		return PerUserPrice(features, userCount, complexity), nil
	case catalog.ModelFixedTier:
		tier, err := resolveTier(tierID, userCount)
		if err != nil {
			return decimal.Zero, err
		}
		return FixedTierPrice(tier, features, complexity), nil
	case catalog.ModelHybrid:
		return HybridPrice(features, userCount, complexity), nil
	default:
		return decimal.Zero, domain.ErrUnknownPricingModel
	}
}

func resolveTier(tierID string, userCount int) (catalog.UserTier, error) {
	if tierID == "" {
		return catalog.TierForUsers(userCount), nil
	}
	return catalog.TierByID(tierID)
}

// SetupTotal valor de implantação (taxa única): serviços do catálogo sob a
// política de obrigatórios, com piso catalog.MinSetup sobre o subtotal de
// serviços, mais customização técnica e nível de integração. O piso incide
// antes dos adicionais: uma proposta sem serviço algum ainda paga o setup
// mínimo, e os adicionais somam por cima.
func SetupTotal(
	services ServiceSelection,
	domainOpt catalog.DomainOption,
	branding catalog.BrandingOption,
	integration catalog.IntegrationLevel,
	policy RequiredServicesPolicy,
) decimal.Decimal {
	subtotal := decimal.Zero
	for _, s := range catalog.Services {
		charge := services.Selected(s.ID)
		if policy == RequiredLocked && s.Required {
			charge = true
		}
		if charge {
			subtotal = subtotal.Add(s.Cost)
		}
	}
	total := decimal.Max(subtotal, catalog.MinSetup)

	if opt, ok := catalog.DomainOptions[domainOpt]; ok {
		total = total.Add(opt.Cost)
	}
	if opt, ok := catalog.BrandingOptions[branding]; ok {
		total = total.Add(opt.Cost)
	}
	if cost, ok := catalog.IntegrationLevelCosts[integration]; ok {
		total = total.Add(cost)
	}
	return total
}
