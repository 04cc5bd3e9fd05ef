package usecase

import (
	"fmt"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/domain/catalog"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
)

// Equipes até este tamanho saem do wizard no modelo por assento; acima disso
// o pacote fechado por faixa costuma fechar melhor a conta.
const wizardPerUserMaxTeam = 10

// WizardUseCase converte as respostas do questionário de diagnóstico em um
// preset da calculadora. Não avalia preço — só mapeia respostas em
// configuração inicial.
type WizardUseCase struct{}

// NewWizardUseCase constrói o caso de uso.
func NewWizardUseCase() *WizardUseCase {
	return &WizardUseCase{}
}

// Preset mapeia respostas → preset. Regras do diagnóstico:
//   - plano sugerido pela régua de tamanho de equipe (start <5, pro <20);
//   - IA implica WhatsApp ativo; CRM e WhatsApp sempre entram;
//   - fatores de risco viram fatores de complexidade;
//   - onboarding entra marcado mesmo que a resposta venha desmarcada
//     (serviço obrigatório — a política final é do motor).
func (uc *WizardUseCase) Preset(answers dto.WizardAnswers) dto.CalculatorPreset {
	teamSize := answers.TeamSize
	if teamSize < 1 {
		teamSize = 1
	}

	plan := catalog.PlanForTeamSize(teamSize)
	tier := catalog.TierForUsers(teamSize)

	model := catalog.ModelPerUser
	if teamSize > wizardPerUserMaxTeam {
		model = catalog.ModelFixedTier
	}

	integration := answers.IntegrationLevel
	if _, ok := catalog.IntegrationLevelCosts[integration]; !ok {
		integration = catalog.IntegrationBasic
	}

	features := pricing.FeatureSelection{
		CRM:         true,
		WhatsApp:    true,
		AI:          answers.WantsAI,
		Conversions: answers.WantsConversions,
	}

	preset := dto.CalculatorPreset{
		Plan:         plan,
		TierID:       tier.ID,
		UserCount:    teamSize,
		PricingModel: model,
		Features:     features,
		Services: pricing.ServiceSelection{
			Onboarding: true,
			Training:   answers.ServicesTraining,
			Migration:  answers.ServicesMigration,
		},
		Complexity: pricing.ComplexitySelection{
			OnSite:  answers.HasMeetings,
			Urgency: answers.HasUrgency,
			Support: answers.HasPremiumSupport,
		},
		Integration: integration,
	}
	preset.Summary = summarize(preset, teamSize)
	return preset
}

func summarize(p dto.CalculatorPreset, teamSize int) []string {
	plural := ""
	if teamSize > 1 {
		plural = "s"
	}
	lines := []string{
		fmt.Sprintf("Equipe: %d usuário%s (%s)", teamSize, plural, p.Plan),
	}
	if p.Features.AI {
		lines = append(lines, "Agente de IA com WhatsApp oficial")
	}
	if p.Features.Conversions {
		lines = append(lines, "Rastreamento de conversões")
	}
	if p.Services.Migration {
		lines = append(lines, "Migração de dados incluída")
	}
	if p.Services.Training {
		lines = append(lines, "Treinamento da equipe incluído")
	}
	if p.Complexity.Urgency || p.Complexity.OnSite || p.Complexity.Support {
		lines = append(lines, "Fatores de risco aplicados ao preço")
	}
	model := "Pacote Fixo"
	if p.PricingModel == catalog.ModelPerUser {
		model = "Por Usuário"
	}
	lines = append(lines, "Modelo: "+model)
	return lines
}
