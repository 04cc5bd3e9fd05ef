package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/application/usecase"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
)

// ──────────────────────────────────────────────────────────────────────────────
// Wizard → preset da calculadora
// ──────────────────────────────────────────────────────────────────────────────

func TestWizardPreset_EquipePequena(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 4})

	assert.Equal(t, catalog.PlanStart, preset.Plan)
	assert.Equal(t, "tier_5", preset.TierID)
	assert.Equal(t, catalog.ModelPerUser, preset.PricingModel, "até 10 usuários o wizard sugere por assento")
	assert.Equal(t, 4, preset.UserCount)
}

func TestWizardPreset_EquipeMediaViraPacoteFixo(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 15})

	assert.Equal(t, catalog.PlanPro, preset.Plan)
	assert.Equal(t, "tier_20", preset.TierID)
	assert.Equal(t, catalog.ModelFixedTier, preset.PricingModel)
}

// CRM e WhatsApp sempre entram: são a fundação de qualquer proposta. A IA
// respeita a resposta, mas nunca sai sem o canal.
func TestWizardPreset_FundacaoSempreAtiva(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 8, WantsAI: true, WantsConversions: true})

	assert.True(t, preset.Features.CRM)
	assert.True(t, preset.Features.WhatsApp)
	assert.True(t, preset.Features.AI)
	assert.True(t, preset.Features.Conversions)
}

// Onboarding entra marcado mesmo quando a resposta vem desmarcada: é serviço
// obrigatório e a política final é do motor, não do wizard.
func TestWizardPreset_OnboardingForcado(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 8, ServicesOnboarding: false})
	assert.True(t, preset.Services.Onboarding)
}

func TestWizardPreset_RiscoViraComplexidade(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{
		TeamSize:          8,
		HasUrgency:        true,
		HasMeetings:       true,
		HasPremiumSupport: true,
	})

	assert.True(t, preset.Complexity.Urgency)
	assert.True(t, preset.Complexity.OnSite)
	assert.True(t, preset.Complexity.Support)
}

func TestWizardPreset_IntegracaoInvalidaCaiEmBasic(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 8, IntegrationLevel: "quantica"})
	assert.Equal(t, catalog.IntegrationBasic, preset.Integration)
}

func TestWizardPreset_EquipeZeradaSaneada(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 0})
	assert.Equal(t, 1, preset.UserCount)
	assert.Equal(t, catalog.PlanStart, preset.Plan)
}

func TestWizardPreset_ResumoSempreTemLinhas(t *testing.T) {
	uc := usecase.NewWizardUseCase()

	preset := uc.Preset(dto.WizardAnswers{TeamSize: 15, WantsAI: true, ServicesMigration: true})
	assert.NotEmpty(t, preset.Summary)
	assert.Contains(t, preset.Summary, "Agente de IA com WhatsApp oficial")
	assert.Contains(t, preset.Summary, "Migração de dados incluída")
}
