package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/usecase"
)

// SeedTypeHandler trata as requisições HTTP de tipos de semente (protegido).
type SeedTypeHandler struct {
	uc *usecase.SeedTypeUseCase
}

// NewSeedTypeHandler constrói o handler.
func NewSeedTypeHandler(uc *usecase.SeedTypeUseCase) *SeedTypeHandler {
	return &SeedTypeHandler{uc: uc}
}

// Create godoc
// @Summary      Criar tipo de semente
// @Tags         seed-types
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateSeedTypeRequest  true  "nome e atributos opcionais"
// @Success      201   {object}  dto.SeedTypeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/seed-types [post]
func (h *SeedTypeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateSeedTypeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	seedType, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToSeedTypeResponse(seedType))
}

// GetByID godoc
// @Summary      Obter tipo de semente por ID
// @Tags         seed-types
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do tipo de semente"
// @Success      200  {object}  dto.SeedTypeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/seed-types/{id} [get]
func (h *SeedTypeHandler) GetByID(c *fiber.Ctx) error {
	seedType, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToSeedTypeResponse(seedType))
}

// List godoc
// @Summary      Listar tipos de semente
// @Tags         seed-types
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.SeedTypeResponse
// @Router       /api/seed-types [get]
func (h *SeedTypeHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	seedTypes, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.SeedTypeResponse, 0, len(seedTypes))
	for _, st := range seedTypes {
		out = append(out, dto.ToSeedTypeResponse(st))
	}
	return c.JSON(out)
}
