package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crmpartner/proposal-api/internal/application/usecase"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	CatalogUC  *usecase.CatalogUseCase
	QuoteUC    *usecase.QuoteUseCase
	WizardUC   *usecase.WizardUseCase
	ProposalUC *usecase.ProposalUseCase
}

// Router registra as rotas da API. Todas as rotas são públicas: a API vive
// atrás do painel do parceiro e não guarda estado por usuário.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo estático do configurador
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	api.Get("/catalog", catalogHandler.Get)

	// Cotações (avaliação pura, sem persistência)
	quoteHandler := NewQuoteHandler(deps.QuoteUC)
	api.Post("/quotes", quoteHandler.Evaluate)

	// Wizard de diagnóstico
	wizardHandler := NewWizardHandler(deps.WizardUC)
	api.Post("/wizard/preset", wizardHandler.Preset)

	// Propostas compartilháveis (token auto-contido)
	proposals := api.Group("/proposals")
	proposalHandler := NewProposalHandler(deps.ProposalUC)
	proposals.Post("/", proposalHandler.Create)
	proposals.Get("/:token", proposalHandler.GetByToken)
	proposals.Get("/:token/pdf", proposalHandler.GetPDF)
}
