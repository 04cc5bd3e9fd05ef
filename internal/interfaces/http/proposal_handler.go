package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crmpartner/proposal-api/internal/application/dto"
	"github.com/crmpartner/proposal-api/internal/application/usecase"
)

// ProposalHandler gera propostas compartilháveis e as reabre pelo token.
type ProposalHandler struct {
	uc *usecase.ProposalUseCase
}

// NewProposalHandler constrói o handler.
func NewProposalHandler(uc *usecase.ProposalUseCase) *ProposalHandler {
	return &ProposalHandler{uc: uc}
}

// Create godoc
// @Summary      Gerar proposta compartilhável
// @Tags         proposals
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProposalRequest  true  "Cliente + configuração"
// @Success      201   {object}  dto.ProposalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/proposals [post]
func (h *ProposalHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProposalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	if in.Client.CompanyName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "client.company_name é requerido"})
	}

	out, err := h.uc.Create(in)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByToken godoc
// @Summary      Abrir proposta pelo token
// @Tags         proposals
// @Produce      json
// @Param        token  path  string  true  "Token de compartilhamento"
// @Success      200    {object}  proposal.Snapshot
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/proposals/{token} [get]
func (h *ProposalHandler) GetByToken(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token é requerido"})
	}
	snap, err := h.uc.Decode(token)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(snap)
}

// GetPDF godoc
// @Summary      Proposta em PDF
// @Tags         proposals
// @Produce      application/pdf
// @Param        token  path  string  true  "Token de compartilhamento"
// @Success      200    {file}  binary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/proposals/{token}/pdf [get]
func (h *ProposalHandler) GetPDF(c *fiber.Ctx) error {
	token := c.Params("token")
	if token == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token é requerido"})
	}
	data, err := h.uc.RenderPDF(c.Context(), token)
	if err != nil {
		return writeDomainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="proposta.pdf"`)
	return c.Send(data)
}
