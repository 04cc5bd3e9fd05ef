package pricing

import (
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// Engine compõe as funções de cálculo em uma avaliação única. Não guarda
// estado de proposta — apenas a política de serviços obrigatórios, fixada na
// construção a partir da configuração da aplicação.
type Engine struct {
	requiredPolicy RequiredServicesPolicy
}

// NewEngine constrói o motor. Política vazia ou desconhecida cai em locked,
// o comportamento histórico do configurador.
func NewEngine(policy RequiredServicesPolicy) *Engine {
	if policy != RequiredOptional {
		policy = RequiredLocked
	}
	return &Engine{requiredPolicy: policy}
}

// RequiredPolicy política de serviços obrigatórios em vigor.
func (e *Engine) RequiredPolicy() RequiredServicesPolicy {
	return e.requiredPolicy
}

// Evaluate executa o pipeline completo sobre uma configuração e devolve a
// fotografia dos resultados. Puro e determinístico: mesma configuração,
// mesmo resultado. Erros só para enums desconhecidos (bug do chamador).
func (e *Engine) Evaluate(cfg Config) (*Result, error) {
	features := cfg.Features.Normalized()

	userCount := cfg.UserCount
	if userCount < 0 {
		userCount = 0
	}

	model := cfg.Model
	if model == "" {
		model = catalog.ModelMarkup
	}
	partnership := cfg.Partnership
	if partnership == "" {
		partnership = catalog.PartnershipWhiteLabel
	}

	internalCost := InternalCost(features, userCount)
	complexityPercent := ComplexityPercent(cfg.Complexity)

	calculated, err := MonthlyPrice(model, features, userCount, cfg.TierID, cfg.MarkupPercent, cfg.Complexity)
	if err != nil {
		return nil, err
	}

	final := calculated
	manualOverride := false
	if cfg.ManualMonthlyPrice != nil {
		final = clampNonNegative(*cfg.ManualMonthlyPrice)
		manualOverride = true
	}

	setupTotal := SetupTotal(cfg.Services, cfg.Domain, cfg.Branding, cfg.Integration, e.requiredPolicy)

	roi := ROI(cfg.ROI)
	valuePricing := ValuePricing(calculated, roi.RecoveredRevenue)

	curve := PaybackCurve(setupTotal, final, roi.RecoveredRevenue)
	paybackMonth := FindPaybackMonth(curve)
	yearlyProfit := YearlyProfit(curve)

	split, err := Profit(partnership, final, internalCost)
	if err != nil {
		return nil, err
	}

	return &Result{
		InternalCost:      internalCost,
		ComplexityPercent: complexityPercent,
		CalculatedMonthly: calculated,
		FinalMonthly:      final,
		ManualOverride:    manualOverride,
		SetupTotal:        setupTotal,
		ROI:               roi,
		ValuePricing:      valuePricing,
		Payback:           curve,
		PaybackMonth:      paybackMonth,
		YearlyProfit:      yearlyProfit,
		Profit:            split,
		MarginPercent:     Margin(split.Profit, final),
		MinimumPrice:      ValidateMinimumPrice(final),
	}, nil
}
