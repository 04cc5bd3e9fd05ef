package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/application/usecase"
	"github.com/crmpartner/proposal-api/internal/domain"
)

// QuoteHandler avalia configurações de proposta sem persistir nada.
type QuoteHandler struct {
	uc *usecase.QuoteUseCase
}

// NewQuoteHandler constrói o handler.
func NewQuoteHandler(uc *usecase.QuoteUseCase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// Evaluate godoc
// @Summary      Avaliar configuração (cotação)
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.QuoteRequest  true  "Configuração da proposta"
// @Success      200   {object}  dto.QuoteResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Evaluate(c *fiber.Ctx) error {
	var in dto.QuoteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}

	out, err := h.uc.Evaluate(in.Config)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(out)
}

// writeDomainError traduz erros de domínio para status HTTP. Enums fora do
// catálogo são erro do cliente (422); o resto é falha interna.
func writeDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrUnknownPricingModel),
		errors.Is(err, domain.ErrUnknownPartnershipModel),
		errors.Is(err, domain.ErrUnknownPlanLevel),
		errors.Is(err, domain.ErrUnknownTier):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{Code: "UNKNOWN_OPTION", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidToken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
