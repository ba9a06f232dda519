package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/usecase"
)

// ChamberHandler trata as requisições HTTP de câmaras e suas localizações (protegido).
type ChamberHandler struct {
	uc *usecase.ChamberUseCase
}

// NewChamberHandler constrói o handler.
func NewChamberHandler(uc *usecase.ChamberUseCase) *ChamberHandler {
	return &ChamberHandler{uc: uc}
}

// Create godoc
// @Summary      Criar câmara
// @Tags         chambers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateChamberRequest  true  "nome, dimensões e capacidade padrão"
// @Success      201   {object}  dto.ChamberResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/chambers [post]
func (h *ChamberHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	chamber, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToChamberResponse(chamber))
}

// GetByID godoc
// @Summary      Obter câmara por ID
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da câmara"
// @Success      200  {object}  dto.ChamberResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [get]
func (h *ChamberHandler) GetByID(c *fiber.Ctx) error {
	chamber, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToChamberResponse(chamber))
}

// List godoc
// @Summary      Listar câmaras
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ChamberResponse
// @Router       /api/chambers [get]
func (h *ChamberHandler) List(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	chambers, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.ChamberResponse, 0, len(chambers))
	for _, chamber := range chambers {
		out = append(out, dto.ToChamberResponse(chamber))
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Atualizar câmara
// @Tags         chambers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da câmara"
// @Param        body  body  dto.UpdateChamberRequest  true  "Campos a atualizar"
// @Success      200   {object}  dto.ChamberResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/chambers/{id} [put]
func (h *ChamberHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateChamberRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	chamber, err := h.uc.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToChamberResponse(chamber))
}

// GenerateLocations godoc
// @Summary      Gerar a grade de localizações da câmara
// @Description  Expande quadras × lados × filas × andares e cria as localizações
//	que ainda não existem. Idempotente.
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da câmara"
// @Success      201  {object}  map[string]int
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/chambers/{id}/locations/generate [post]
func (h *ChamberHandler) GenerateLocations(c *fiber.Ctx) error {
	created, err := h.uc.GenerateLocations(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"created": created})
}

// ListLocations godoc
// @Summary      Listar localizações da câmara
// @Tags         chambers
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da câmara"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.LocationResponse
// @Router       /api/chambers/{id}/locations [get]
func (h *ChamberHandler) ListLocations(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	locations, err := h.uc.ListLocations(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		out = append(out, dto.ToLocationResponse(loc))
	}
	return c.JSON(out)
}

// pageFromQuery lê limit/offset com os padrões e tetos usuais.
func pageFromQuery(c *fiber.Ctx) dto.PageRequest {
	page := dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	page.DefaultPage()
	if page.Limit > 100 {
		page.Limit = 100
	}
	return page
}
