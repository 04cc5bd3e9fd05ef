package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/crmpartner/proposal-api/internal/application/usecase"
	"github.com/crmpartner/proposal-api/internal/domain/pricing"
	infrapdf "github.com/crmpartner/proposal-api/internal/infrastructure/pdf"
	"github.com/crmpartner/proposal-api/internal/infrastructure/share"
	httpRouter "github.com/crmpartner/proposal-api/internal/interfaces/http"
	"github.com/crmpartner/proposal-api/pkg/config"
	"github.com/crmpartner/proposal-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("required_services", cfg.Engine.RequiredServices).
		Msg("iniciando aplicação")

	engine := pricing.NewEngine(pricing.RequiredServicesPolicy(cfg.Engine.RequiredServices))
	codec := share.NewCodec()
	pdfGenerator := infrapdf.NewMarotoProposalGenerator(cfg.App.Brand)

	catalogUC := usecase.NewCatalogUseCase()
	quoteUC := usecase.NewQuoteUseCase(engine)
	wizardUC := usecase.NewWizardUseCase()
	proposalUC := usecase.NewProposalUseCase(engine, codec, pdfGenerator, cfg.Engine.ProposalValidityDays)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Proposal API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:  catalogUC,
		QuoteUC:    quoteUC,
		WizardUC:   wizardUC,
		ProposalUC: proposalUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação parada")
}
