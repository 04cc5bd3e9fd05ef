package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// CatalogUseCase expõe as tabelas estáticas do configurador. Os dados não
// mudam em runtime, então a resposta é montada uma vez na construção.
type CatalogUseCase struct {
	cached dto.CatalogResponse
}

// NewCatalogUseCase constrói o caso de uso com a resposta pré-montada.
func NewCatalogUseCase() *CatalogUseCase {
	return &CatalogUseCase{cached: buildCatalog()}
}

// Get devolve o catálogo completo.
func (uc *CatalogUseCase) Get() dto.CatalogResponse {
	return uc.cached
}

func buildCatalog() dto.CatalogResponse {
	out := dto.CatalogResponse{
		PricingModels: []string{
			string(catalog.ModelMarkup),
			string(catalog.ModelPerUser),
			string(catalog.ModelFixedTier),
			string(catalog.ModelHybrid),
		},
		Features: []dto.FeatureItem{
			{ID: catalog.FeatureCRM, Label: "CRM & Pipeline", Cost: catalog.CRMCostPerSeat, PerSeat: true},
			{ID: catalog.FeatureWhatsApp, Label: "WhatsApp Oficial", Cost: catalog.WhatsAppCost},
			{ID: catalog.FeatureAI, Label: "Agente de IA", Cost: catalog.AIAgentCost},
			{ID: catalog.FeatureConversions, Label: "Conversões", Cost: catalog.ConversionsCost},
		},
		IntegrationCosts: make(map[string]decimal.Decimal, len(catalog.IntegrationLevelCosts)),
		Rules: dto.FinancialRules{
			MinSetup:                     catalog.MinSetup,
			MinMonthlyCost:               catalog.MinMonthlyCost,
			ValueSharePercent:            catalog.ValueSharePercent,
			PartnerShareRate:             catalog.PartnerShareRate,
			HighTicketThresholdPercent:   catalog.HighTicketThresholdPercent,
			MaxBillableSeats:             catalog.MaxBillableSeats,
			DefaultConversionImprovement: catalog.DefaultConversionImprovement,
			MinConversionImprovement:     catalog.MinConversionImprovement,
			MaxConversionImprovement:     catalog.MaxConversionImprovement,
		},
	}

	for _, level := range []catalog.PlanLevel{catalog.PlanStart, catalog.PlanPro, catalog.PlanEnterprise} {
		preset, err := catalog.PresetForPlan(level)
		if err != nil {
			continue
		}
		out.Plans = append(out.Plans, dto.PlanItem{
			Level: level, TierID: preset.TierID,
			CRM: preset.CRM, WhatsApp: preset.WhatsApp, AI: preset.AI, Conversions: preset.Conversions,
		})
	}

	for _, s := range catalog.Services {
		out.Services = append(out.Services, dto.ServiceItem{ID: s.ID, Label: s.Label, Cost: s.Cost, Required: s.Required})
	}
	for _, f := range catalog.ComplexityFactors {
		out.Complexity = append(out.Complexity, dto.ComplexityItem{ID: f.ID, Label: f.Label, Percent: f.Percent, FlatCost: f.FlatCost})
	}
	for _, t := range catalog.UserTiers {
		out.Tiers = append(out.Tiers, dto.TierItem{
			ID: t.ID, Label: t.Label, MinUsers: t.MinUsers, MaxUsers: t.MaxUsers,
			LinkedPlan: t.LinkedPlan, FixedMonthlyPrice: t.FixedMonthlyPrice,
		})
	}
	for _, b := range catalog.VolumeBands {
		out.VolumeBands = append(out.VolumeBands, dto.VolumeBandItem{MinUsers: b.MinUsers, MaxUsers: b.MaxUsers, PricePerUser: b.PricePerUser})
	}

	for _, opt := range []catalog.DomainOption{catalog.DomainDefault, catalog.DomainCustom} {
		o := catalog.DomainOptions[opt]
		out.DomainOptions = append(out.DomainOptions, dto.CustomizationItem{ID: o.ID, Label: o.Label, Cost: o.Cost})
	}
	for _, opt := range []catalog.BrandingOption{catalog.BrandingStandard, catalog.BrandingWhiteLabel} {
		o := catalog.BrandingOptions[opt]
		out.BrandingOptions = append(out.BrandingOptions, dto.CustomizationItem{ID: o.ID, Label: o.Label, Cost: o.Cost})
	}
	for level, cost := range catalog.IntegrationLevelCosts {
		out.IntegrationCosts[string(level)] = cost
	}

	return out
}
