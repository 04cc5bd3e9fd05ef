package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/application/usecase"
)

// WizardHandler converte o diagnóstico guiado em preset da calculadora.
type WizardHandler struct {
	uc *usecase.WizardUseCase
}

// NewWizardHandler constrói o handler.
func NewWizardHandler(uc *usecase.WizardUseCase) *WizardHandler {
	return &WizardHandler{uc: uc}
}

// Preset godoc
// @Summary      Preset da calculadora a partir do wizard
// @Tags         wizard
// @Accept       json
// @Produce      json
// @Param        body  body  dto.WizardAnswers  true  "Respostas do diagnóstico"
// @Success      200   {object}  dto.CalculatorPreset
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/wizard/preset [post]
func (h *WizardHandler) Preset(c *fiber.Ctx) error {
	var in dto.WizardAnswers
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.TeamSize <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "team_size deve ser maior que zero"})
	}
	return c.JSON(h.uc.Preset(in))
}
