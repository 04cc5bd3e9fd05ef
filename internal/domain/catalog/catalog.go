// Package catalog contém as tabelas estáticas do configurador de propostas:
// funcionalidades, serviços, faixas de usuários, bandas de preço por volume,
// fatores de complexidade e regras financeiras. São dados de configuração,
// não calculados — os valores numéricos são contratuais e entram nos testes
// do motor de precificação tal como estão aqui.
package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/crmpartner/proposal-api/internal/domain"
)

// ── Enums ─────────────────────────────────────────────────────────────────────

// PlanLevel nível de plano comercial.
type PlanLevel string

const (
	PlanStart      PlanLevel = "start"
	PlanPro        PlanLevel = "pro"
	PlanEnterprise PlanLevel = "enterprise"
)

// PricingModel modelo de precificação da mensalidade.
type PricingModel string

const (
	// ModelMarkup variante clássica: custo interno com markup e fatores de
	// complexidade multiplicativos.
	ModelMarkup PricingModel = "markup"
	// ModelPerUser preço por assento com bandas de desconto por volume.
	ModelPerUser PricingModel = "per_user"
	// ModelFixedTier pacote fechado com preço pré-definido por faixa.
	ModelFixedTier PricingModel = "fixed_tier"
	// ModelHybrid preço base cobrindo N assentos + valor por assento extra.
	ModelHybrid PricingModel = "hybrid"
)

// PartnershipModel define quem fica com a margem da venda.
type PartnershipModel string

const (
	// PartnershipWhiteLabel o vendedor fica com 100% da margem (preço - custo).
	PartnershipWhiteLabel PartnershipModel = "whitelabel"
	// PartnershipRevenueShare o vendedor fica com PartnerShareRate do preço de
	// venda e o restante é taxa da plataforma. O custo interno não entra
	// nesse ramo — comportamento contratual, não alterar.
	PartnershipRevenueShare PartnershipModel = "partner"
)

// FeatureID, ServiceID e ComplexityID são catálogos fechados: chaves fora
// das constantes abaixo são rejeitadas na borda HTTP.
type (
	FeatureID    string
	ServiceID    string
	ComplexityID string
)

const (
	FeatureCRM         FeatureID = "crm"
	FeatureWhatsApp    FeatureID = "whatsapp"
	FeatureAI          FeatureID = "ai"
	FeatureConversions FeatureID = "conversions"
)

const (
	ServiceOnboarding ServiceID = "onboarding"
	ServiceTraining   ServiceID = "training"
	ServiceMigration  ServiceID = "migration"
)

const (
	ComplexityOnSite  ComplexityID = "presencial"
	ComplexityUrgency ComplexityID = "urgencia"
	ComplexitySupport ComplexityID = "suporte"
)

// IntegrationLevel nível de integração técnica levantado pelo wizard.
type IntegrationLevel string

const (
	IntegrationBasic        IntegrationLevel = "basic"
	IntegrationIntermediate IntegrationLevel = "intermediate"
	IntegrationAdvanced     IntegrationLevel = "advanced"
)

// DomainOption e BrandingOption — customização técnica (white label).
type (
	DomainOption   string
	BrandingOption string
)

const (
	DomainDefault DomainOption = "default"
	DomainCustom  DomainOption = "custom"

	BrandingStandard   BrandingOption = "standard"
	BrandingWhiteLabel BrandingOption = "whitelabel"
)

// ── Custos internos por funcionalidade ────────────────────────────────────────

// Custo do provedor por funcionalidade ativa. WhatsApp é zero porque seu
// custo já está embutido no módulo de IA.
var (
	CRMCostPerSeat  = decimal.NewFromInt(20)
	AIAgentCost     = decimal.NewFromInt(60)
	ConversionsCost = decimal.NewFromInt(20)
	WhatsAppCost    = decimal.Zero
)

// MaxBillableSeats teto de assentos considerados no custo interno.
const MaxBillableSeats = 100

// ── Regras financeiras ────────────────────────────────────────────────────────

var (
	// MinSetup piso do valor de implantação (taxa única).
	MinSetup = decimal.NewFromInt(500)
	// MinMonthlyCost piso de sustentabilidade da mensalidade.
	MinMonthlyCost = decimal.NewFromInt(160)
	// ValueSharePercent fatia da receita recuperada usada na sugestão de
	// preço por valor (value-based pricing).
	ValueSharePercent = decimal.NewFromInt(10)
	// PartnerShareRate fração do preço de venda que fica com o parceiro no
	// modelo de revenue share.
	PartnerShareRate = decimal.NewFromFloat(0.70)
)

// HighTicketThresholdPercent diferença (%) entre preço por valor e preço
// cost-plus a partir da qual a oportunidade é marcada como alto ticket.
const HighTicketThresholdPercent = 30

// Limites do slider de melhoria de conversão na calculadora de ROI.
const (
	DefaultConversionImprovement = 20
	MinConversionImprovement     = 5
	MaxConversionImprovement     = 50
)

// ── Serviços de implantação ───────────────────────────────────────────────────

// Service item do catálogo de serviços de taxa única.
type Service struct {
	ID       ServiceID
	Label    string
	Cost     decimal.Decimal
	Required bool
}

// Services catálogo de serviços, na ordem de exibição.
var Services = []Service{
	{ID: ServiceOnboarding, Label: "Setup Técnico", Cost: decimal.NewFromInt(500), Required: true},
	{ID: ServiceTraining, Label: "Treinamento", Cost: decimal.NewFromInt(1500)},
	{ID: ServiceMigration, Label: "Migração de Dados", Cost: decimal.NewFromInt(1000)},
}

// ServiceByID busca um serviço do catálogo.
func ServiceByID(id ServiceID) (Service, bool) {
	for _, s := range Services {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}

// ── Fatores de complexidade ───────────────────────────────────────────────────

// ComplexityFactor sobretaxa por condição de entrega fora do padrão.
// Percent aplica na variante multiplicativa (modelo markup); FlatCost é o
// adicional em R$ nas variantes de preço flexível (per_user, fixed_tier,
// hybrid), onde não existe base de custo para aplicar percentual.
type ComplexityFactor struct {
	ID       ComplexityID
	Label    string
	Percent  int64
	FlatCost decimal.Decimal
}

// ComplexityFactors catálogo de fatores, na ordem de exibição.
var ComplexityFactors = []ComplexityFactor{
	{ID: ComplexityOnSite, Label: "Reuniões Presenciais", Percent: 10, FlatCost: decimal.NewFromInt(100)},
	{ID: ComplexityUrgency, Label: "Urgência na Entrega", Percent: 15, FlatCost: decimal.NewFromInt(150)},
	{ID: ComplexitySupport, Label: "Suporte Estendido", Percent: 20, FlatCost: decimal.NewFromInt(200)},
}

// ── Faixas de usuários ────────────────────────────────────────────────────────

// UserTier faixa de usuários vinculada a um nível de plano.
type UserTier struct {
	ID         string
	Label      string
	MinUsers   int
	MaxUsers   int
	LinkedPlan PlanLevel
	// FixedMonthlyPrice preço fechado da faixa no modelo fixed_tier.
	FixedMonthlyPrice decimal.Decimal
}

// UserTiers faixas em ordem crescente, sem sobreposição.
var UserTiers = []UserTier{
	{ID: "tier_5", Label: "Até 5 usuários", MinUsers: 1, MaxUsers: 5, LinkedPlan: PlanStart, FixedMonthlyPrice: decimal.NewFromInt(390)},
	{ID: "tier_10", Label: "Até 10 usuários", MinUsers: 6, MaxUsers: 10, LinkedPlan: PlanStart, FixedMonthlyPrice: decimal.NewFromInt(590)},
	{ID: "tier_20", Label: "Até 20 usuários", MinUsers: 11, MaxUsers: 20, LinkedPlan: PlanPro, FixedMonthlyPrice: decimal.NewFromInt(890)},
	{ID: "tier_30", Label: "Até 30 usuários", MinUsers: 21, MaxUsers: 30, LinkedPlan: PlanPro, FixedMonthlyPrice: decimal.NewFromInt(1190)},
	{ID: "tier_50", Label: "Até 50 usuários", MinUsers: 31, MaxUsers: 50, LinkedPlan: PlanEnterprise, FixedMonthlyPrice: decimal.NewFromInt(1590)},
	{ID: "tier_unlimited", Label: "Ilimitado", MinUsers: 51, MaxUsers: 999, LinkedPlan: PlanEnterprise, FixedMonthlyPrice: decimal.NewFromInt(1990)},
}

// TierByID busca uma faixa pelo id.
func TierByID(id string) (UserTier, error) {
	for _, t := range UserTiers {
		if t.ID == id {
			return t, nil
		}
	}
	return UserTier{}, domain.ErrUnknownTier
}

// TierForUsers devolve a faixa que contém a quantidade de usuários.
// Quantidades acima da última faixa caem na última (clamp), nunca em erro.
func TierForUsers(userCount int) UserTier {
	for _, t := range UserTiers {
		if userCount >= t.MinUsers && userCount <= t.MaxUsers {
			return t
		}
	}
	if userCount < UserTiers[0].MinUsers {
		return UserTiers[0]
	}
	return UserTiers[len(UserTiers)-1]
}

// ── Bandas de preço por volume (modelo per_user) ──────────────────────────────

// VolumeBand faixa de usuários com preço por assento decrescente no volume.
type VolumeBand struct {
	MinUsers     int
	MaxUsers     int
	PricePerUser decimal.Decimal
}

// VolumeBands tabela crescente e sem sobreposição.
var VolumeBands = []VolumeBand{
	{MinUsers: 1, MaxUsers: 5, PricePerUser: decimal.NewFromInt(80)},
	{MinUsers: 6, MaxUsers: 10, PricePerUser: decimal.NewFromInt(70)},
	{MinUsers: 11, MaxUsers: 20, PricePerUser: decimal.NewFromInt(60)},
	{MinUsers: 21, MaxUsers: 30, PricePerUser: decimal.NewFromInt(50)},
	{MinUsers: 31, MaxUsers: 50, PricePerUser: decimal.NewFromInt(45)},
	{MinUsers: 51, MaxUsers: 999, PricePerUser: decimal.NewFromInt(40)},
}

// BandForUsers devolve a banda que contém a quantidade de usuários.
// Acima do teto da última banda, devolve a última banda (política de clamp:
// contas grandes pagam o preço da maior banda, nunca falham).
func BandForUsers(userCount int) VolumeBand {
	for _, b := range VolumeBands {
		if userCount >= b.MinUsers && userCount <= b.MaxUsers {
			return b
		}
	}
	if userCount < VolumeBands[0].MinUsers {
		return VolumeBands[0]
	}
	return VolumeBands[len(VolumeBands)-1]
}

// ── Modelo híbrido ────────────────────────────────────────────────────────────

// Constantes do modelo hybrid: preço base cobre HybridBaseUsers assentos;
// cada assento além disso custa HybridExtraUserPrice.
var (
	HybridBasePrice      = decimal.NewFromInt(400)
	HybridExtraUserPrice = decimal.NewFromInt(50)
)

const HybridBaseUsers = 5

// ── Customização técnica ──────────────────────────────────────────────────────

// CustomizationOption opção de customização com custo de setup associado.
type CustomizationOption struct {
	ID    string
	Label string
	Cost  decimal.Decimal
}

// DomainOptions opções de domínio (URL) da instância.
var DomainOptions = map[DomainOption]CustomizationOption{
	DomainDefault: {ID: string(DomainDefault), Label: "Domínio Padrão da Agência", Cost: decimal.Zero},
	DomainCustom:  {ID: string(DomainCustom), Label: "Domínio Personalizado", Cost: decimal.NewFromInt(200)},
}

// BrandingOptions opções de layout e marca.
var BrandingOptions = map[BrandingOption]CustomizationOption{
	BrandingStandard:   {ID: string(BrandingStandard), Label: "Layout Padrão", Cost: decimal.Zero},
	BrandingWhiteLabel: {ID: string(BrandingWhiteLabel), Label: "White Label Completo", Cost: decimal.NewFromInt(500)},
}

// IntegrationLevelCosts adicional de setup por nível de integração técnica.
var IntegrationLevelCosts = map[IntegrationLevel]decimal.Decimal{
	IntegrationBasic:        decimal.Zero,
	IntegrationIntermediate: decimal.NewFromInt(300),
	IntegrationAdvanced:     decimal.NewFromInt(800),
}

// ── Presets de plano ──────────────────────────────────────────────────────────

// PlanPreset configuração inicial aplicada ao escolher um nível de plano.
type PlanPreset struct {
	TierID      string
	CRM         bool
	WhatsApp    bool
	AI          bool
	Conversions bool
}

var planPresets = map[PlanLevel]PlanPreset{
	PlanStart:      {TierID: "tier_5", CRM: true, WhatsApp: true},
	PlanPro:        {TierID: "tier_20", CRM: true, WhatsApp: true, Conversions: true},
	PlanEnterprise: {TierID: "tier_50", CRM: true, WhatsApp: true, AI: true, Conversions: true},
}

// PresetForPlan devolve o preset do nível de plano.
func PresetForPlan(level PlanLevel) (PlanPreset, error) {
	p, ok := planPresets[level]
	if !ok {
		return PlanPreset{}, domain.ErrUnknownPlanLevel
	}
	return p, nil
}

// PlanForTeamSize nível de plano sugerido para o tamanho da equipe
// (mesma régua exibida no wizard de vendas).
func PlanForTeamSize(teamSize int) PlanLevel {
	switch {
	case teamSize < 5:
		return PlanStart
	case teamSize < 20:
		return PlanPro
	default:
		return PlanEnterprise
	}
}
