package dto

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// CatalogResponse catálogo completo exibido pela calculadora: tabelas
// estáticas de serviços, faixas, bandas e regras financeiras. Serializado
// uma vez por request; o front não conhece nenhum valor de negócio hardcoded.
type CatalogResponse struct {
	Plans            []PlanItem                 `json:"plans"`
	PricingModels    []string                   `json:"pricing_models"`
	Features         []FeatureItem              `json:"features"`
	Services         []ServiceItem              `json:"services"`
	Complexity       []ComplexityItem           `json:"complexity_factors"`
	Tiers            []TierItem                 `json:"user_tiers"`
	VolumeBands      []VolumeBandItem           `json:"volume_bands"`
	DomainOptions    []CustomizationItem        `json:"domain_options"`
	BrandingOptions  []CustomizationItem        `json:"branding_options"`
	IntegrationCosts map[string]decimal.Decimal `json:"integration_costs"`
	Rules            FinancialRules             `json:"rules"`
}

// PlanItem nível de plano com seu preset inicial.
type PlanItem struct {
	Level       catalog.PlanLevel `json:"level"`
	TierID      string            `json:"tier_id"`
	CRM         bool              `json:"crm"`
	WhatsApp    bool              `json:"whatsapp"`
	AI          bool              `json:"ai"`
	Conversions bool              `json:"conversions"`
}

// FeatureItem funcionalidade com seu custo interno por unidade.
type FeatureItem struct {
	ID      catalog.FeatureID `json:"id"`
	Label   string            `json:"label"`
	Cost    decimal.Decimal   `json:"internal_cost"`
	PerSeat bool              `json:"per_seat"`
}

// ServiceItem serviço de implantação.
type ServiceItem struct {
	ID       catalog.ServiceID `json:"id"`
	Label    string            `json:"label"`
	Cost     decimal.Decimal   `json:"cost"`
	Required bool              `json:"required"`
}

// ComplexityItem fator de complexidade com as duas variantes de sobretaxa.
type ComplexityItem struct {
	ID       catalog.ComplexityID `json:"id"`
	Label    string               `json:"label"`
	Percent  int64                `json:"percent"`
	FlatCost decimal.Decimal      `json:"flat_cost"`
}

// TierItem faixa de usuários.
type TierItem struct {
	ID                string            `json:"id"`
	Label             string            `json:"label"`
	MinUsers          int               `json:"min_users"`
	MaxUsers          int               `json:"max_users"`
	LinkedPlan        catalog.PlanLevel `json:"linked_plan"`
	FixedMonthlyPrice decimal.Decimal   `json:"fixed_monthly_price"`
}

// VolumeBandItem banda de preço por assento do modelo per_user.
type VolumeBandItem struct {
	MinUsers     int             `json:"min_users"`
	MaxUsers     int             `json:"max_users"`
	PricePerUser decimal.Decimal `json:"price_per_user"`
}

// CustomizationItem opção de customização técnica.
type CustomizationItem struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`
	Cost  decimal.Decimal `json:"cost"`
}

// FinancialRules pisos e parâmetros contratuais do motor.
type FinancialRules struct {
	MinSetup                     decimal.Decimal `json:"min_setup"`
	MinMonthlyCost               decimal.Decimal `json:"min_monthly_cost"`
	ValueSharePercent            decimal.Decimal `json:"value_share_percent"`
	PartnerShareRate             decimal.Decimal `json:"partner_share_rate"`
	HighTicketThresholdPercent   int             `json:"high_ticket_threshold_percent"`
	MaxBillableSeats             int             `json:"max_billable_seats"`
	DefaultConversionImprovement int             `json:"default_conversion_improvement"`
	MinConversionImprovement     int             `json:"min_conversion_improvement"`
	MaxConversionImprovement     int             `json:"max_conversion_improvement"`
}
