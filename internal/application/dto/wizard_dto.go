package dto

import (
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// WizardAnswers respostas do questionário de diagnóstico (Sales Wizard),
// na ordem dos passos: dimensionamento, escopo técnico, serviços, risco.
type WizardAnswers struct {
	TeamSize         int                      `json:"team_size"`
	WantsAI          bool                     `json:"wants_ai"`
	IntegrationLevel catalog.IntegrationLevel `json:"integration_level"`
	WantsConversions bool                     `json:"wants_conversions"`

	ServicesMigration  bool `json:"services_migration"`
	ServicesTraining   bool `json:"services_training"`
	ServicesOnboarding bool `json:"services_onboarding"`

	HasUrgency        bool `json:"has_urgency"`
	HasMeetings       bool `json:"has_meetings"`
	HasPremiumSupport bool `json:"has_premium_support"`
}

// CalculatorPreset configuração inicial da calculadora derivada do wizard.
type CalculatorPreset struct {
	Plan         catalog.PlanLevel           `json:"plan"`
	TierID       string                      `json:"tier_id"`
	UserCount    int                         `json:"user_count"`
	PricingModel catalog.PricingModel        `json:"pricing_model"`
	Features     pricing.FeatureSelection    `json:"features"`
	Services     pricing.ServiceSelection    `json:"services"`
	Complexity   pricing.ComplexitySelection `json:"complexity"`
	Integration  catalog.IntegrationLevel    `json:"integration_level"`
	Summary      []string                    `json:"summary"`
}
