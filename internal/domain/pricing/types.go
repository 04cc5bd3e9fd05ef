// Package pricing implementa o motor de cálculo das propostas: custo interno,
// mensalidade por modelo de precificação, implantação, ROI, curva de payback
// e divisão de lucro por modelo de parceria.
//
// Todas as funções são puras e totais: entradas numéricas negativas são
// saneadas para zero e nenhum cálculo falha — erro só existe para valores de
// enum desconhecidos, que indicam bug do chamador e não dado de usuário.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// FeatureSelection flags sobre o catálogo fechado de funcionalidades.
type FeatureSelection struct {
	CRM         bool `json:"crm"`
	WhatsApp    bool `json:"whatsapp"`
	AI          bool `json:"ai"`
	Conversions bool `json:"conversions"`
}

// Normalized aplica o invariante de dependência: IA exige WhatsApp ativo.
// Desligar WhatsApp derruba IA junto.
func (f FeatureSelection) Normalized() FeatureSelection {
	if !f.WhatsApp {
		f.AI = false
	}
	return f
}

// ServiceSelection flags sobre o catálogo de serviços de implantação.
type ServiceSelection struct {
	Onboarding bool `json:"onboarding"`
	Training   bool `json:"training"`
	Migration  bool `json:"migration"`
}

// Selected devolve se o serviço está marcado na seleção.
func (s ServiceSelection) Selected(id catalog.ServiceID) bool {
	switch id {
	case catalog.ServiceOnboarding:
		return s.Onboarding
	case catalog.ServiceTraining:
		return s.Training
	case catalog.ServiceMigration:
		return s.Migration
	}
	return false
}

// ComplexitySelection flags sobre os fatores de complexidade.
type ComplexitySelection struct {
	OnSite  bool `json:"presencial"`
	Urgency bool `json:"urgencia"`
	Support bool `json:"suporte"`
}

// Selected devolve se o fator está marcado na seleção.
func (c ComplexitySelection) Selected(id catalog.ComplexityID) bool {
	switch id {
	case catalog.ComplexityOnSite:
		return c.OnSite
	case catalog.ComplexityUrgency:
		return c.Urgency
	case catalog.ComplexitySupport:
		return c.Support
	}
	return false
}

// ROIInputs entradas da calculadora de retorno (funil de conversão).
type ROIInputs struct {
	// TicketMedio valor médio de cada venda do cliente.
	TicketMedio decimal.Decimal `json:"ticket_medio"`
	// LeadsPerMonth oportunidades mensais.
	LeadsPerMonth decimal.Decimal `json:"leads_per_month"`
	// CurrentConversionRate taxa atual (0–100).
	CurrentConversionRate decimal.Decimal `json:"current_conversion_rate"`
	// ConversionImprovement melhoria relativa (%) sobre a taxa atual —
	// taxa 5% com melhoria 20% vira 6%, não 25%.
	ConversionImprovement decimal.Decimal `json:"conversion_improvement"`
}

// ROIOutputs saídas da calculadora de retorno. Valores monetários
// arredondados à unidade; taxa nova com 1 casa decimal.
type ROIOutputs struct {
	CurrentRevenue    decimal.Decimal `json:"current_revenue"`
	ProjectedRevenue  decimal.Decimal `json:"projected_revenue"`
	RecoveredRevenue  decimal.Decimal `json:"recovered_revenue"`
	NewConversionRate decimal.Decimal `json:"new_conversion_rate"`
}

// ValuePricingResult sugestão de preço por valor (fatia da receita recuperada).
type ValuePricingResult struct {
	CostPlusPrice           decimal.Decimal `json:"cost_plus_price"`
	ValueSuggestedPrice     decimal.Decimal `json:"value_suggested_price"`
	PriceDifferencePercent  int64           `json:"price_difference_percent"`
	IsHighTicketOpportunity bool            `json:"is_high_ticket_opportunity"`
}

// PaybackPoint um mês da simulação de caixa acumulado (0..12).
type PaybackPoint struct {
	Month             int             `json:"month"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
	IsPositive        bool            `json:"is_positive"`
}

// ProfitSplit divisão do preço de venda entre parceiro e plataforma.
type ProfitSplit struct {
	Profit      decimal.Decimal `json:"profit"`
	PlatformFee decimal.Decimal `json:"platform_fee"`
}

// MinimumPriceCheck resultado consultivo da validação de piso de mensalidade.
// Não bloqueia cálculo nem geração de proposta.
type MinimumPriceCheck struct {
	Valid   bool            `json:"valid"`
	Deficit decimal.Decimal `json:"deficit"`
	Message string          `json:"message,omitempty"`
}

// RequiredServicesPolicy política para serviços obrigatórios no setup.
type RequiredServicesPolicy string

const (
	// RequiredLocked serviços obrigatórios sempre somam no setup.
	RequiredLocked RequiredServicesPolicy = "locked"
	// RequiredOptional serviços obrigatórios contam só quando selecionados.
	RequiredOptional RequiredServicesPolicy = "optional"
)

// Config configuração imutável de uma proposta, passada por valor a cada
// avaliação. Todo o estado mutável (seleções, override manual) é do chamador.
type Config struct {
	Model       catalog.PricingModel     `json:"pricing_model"`
	Partnership catalog.PartnershipModel `json:"partnership_model"`

	Features   FeatureSelection    `json:"features"`
	UserCount  int                 `json:"user_count"`
	TierID     string              `json:"tier_id,omitempty"` // usado no modelo fixed_tier; vazio = derivar de UserCount
	Services   ServiceSelection    `json:"services"`
	Complexity ComplexitySelection `json:"complexity"`

	Domain      catalog.DomainOption     `json:"domain,omitempty"`
	Branding    catalog.BrandingOption   `json:"branding,omitempty"`
	Integration catalog.IntegrationLevel `json:"integration_level,omitempty"`

	// MarkupPercent margem do vendedor (%). O slider da UI limita a [50,300],
	// mas o motor aceita qualquer percentual não negativo.
	MarkupPercent decimal.Decimal `json:"markup_percent"`

	// ManualMonthlyPrice override explícito da mensalidade calculada.
	ManualMonthlyPrice *decimal.Decimal `json:"manual_monthly_price,omitempty"`

	ROI ROIInputs `json:"roi_inputs"`
}

// Result fotografia completa de uma avaliação do motor.
type Result struct {
	InternalCost      decimal.Decimal `json:"internal_cost"`
	ComplexityPercent decimal.Decimal `json:"complexity_percent"`

	CalculatedMonthly decimal.Decimal `json:"calculated_monthly"`
	FinalMonthly      decimal.Decimal `json:"final_monthly"`
	ManualOverride    bool            `json:"manual_override"`
	SetupTotal        decimal.Decimal `json:"setup_total"`

	ROI          ROIOutputs         `json:"roi"`
	ValuePricing ValuePricingResult `json:"value_pricing"`

	Payback      []PaybackPoint  `json:"payback"`
	PaybackMonth *int            `json:"payback_month"` // nil = não paga dentro do horizonte
	YearlyProfit decimal.Decimal `json:"yearly_profit"`

	Profit        ProfitSplit       `json:"profit"`
	MarginPercent int64             `json:"margin_percent"`
	MinimumPrice  MinimumPriceCheck `json:"minimum_price"`
}
