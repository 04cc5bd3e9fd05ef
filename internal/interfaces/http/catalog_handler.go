package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/crmpartner/proposal-api/internal/application/usecase"
)

// CatalogHandler expõe o catálogo estático do configurador.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler constrói o handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// Get godoc
// @Summary      Catálogo do configurador
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.CatalogResponse
// @Router       /api/catalog [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.uc.Get())
}
