package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/domain/entity"
)

// InventoryHandler trata as requisições HTTP de produtos, movimentações e
// capacidade (protegido).
type InventoryHandler struct {
	uc     *inventory.InventoryUseCase
	verify *inventory.VerificationUseCase
}

// NewInventoryHandler constrói o handler.
func NewInventoryHandler(uc *inventory.InventoryUseCase, verify *inventory.VerificationUseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc, verify: verify}
}

// CreateProduct godoc
// @Summary      Criar produto
// @Description  locationId vazio aciona a seleção automática da localização ótima.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "lot, seedTypeId, quantity, weightPerUnitKg, locationId (opcional)"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products [post]
func (h *InventoryHandler) CreateProduct(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.CreateProduct(c.Context(), inventory.CreateProductInput{
		Lot:             in.Lot,
		SeedTypeID:      in.SeedTypeID,
		Quantity:        in.Quantity,
		WeightPerUnitKg: in.WeightPerUnitKg,
		LocationID:      in.LocationID,
		ExpirationDate:  in.ExpirationDate,
		Notes:           in.Notes,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToProductResponse(product))
}

// GetProduct godoc
// @Summary      Obter produto por ID
// @Tags         products
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID do produto"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id} [get]
func (h *InventoryHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.uc.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// MoveProduct godoc
// @Summary      Mover produto para outra localização
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.MoveProductRequest  true  "newLocationId, reason, withBenefit"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/move [post]
func (h *InventoryHandler) MoveProduct(c *fiber.Ctx) error {
	var in dto.MoveProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.MoveProduct(c.Context(), c.Params("id"), in.NewLocationID, GetUserID(c), inventory.MoveOptions{
		Reason:      in.Reason,
		WithBenefit: in.WithBenefit,
	})
	if err != nil {
		return respondError(c, err)
	}
	body := fiber.Map{
		"product":        dto.ToProductResponse(result.Product),
		"fromLocationId": result.FromLocationID,
		"toLocationId":   result.ToLocationID,
	}
	if result.BenefitScore != nil {
		body["benefitScore"] = result.BenefitScore
	}
	return c.JSON(body)
}

// RemoveProduct godoc
// @Summary      Remover produto (retirada total forçada)
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.RemoveProductRequest  false  "reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id} [delete]
func (h *InventoryHandler) RemoveProduct(c *fiber.Ctx) error {
	var in dto.RemoveProductRequest
	_ = c.BodyParser(&in) // corpo opcional
	product, err := h.uc.RemoveProduct(c.Context(), c.Params("id"), GetUserID(c), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// AdjustProduct godoc
// @Summary      Ajustar a quantidade de um produto
// @Description  Correção manual; a movimentação resultante leva isAutomatic=false.
// @Tags         products
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.AdjustProductRequest  true  "newQuantity, reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/adjust [post]
func (h *InventoryHandler) AdjustProduct(c *fiber.Ctx) error {
	var in dto.AdjustProductRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	product, err := h.uc.RegisterAdjustment(c.Context(), inventory.AdjustmentInput{
		ProductID:   c.Params("id"),
		NewQuantity: in.NewQuantity,
		Reason:      in.Reason,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// ValidateCapacity godoc
// @Summary      Validar capacidade de uma localização
// @Description  Somente leitura; com withSuggestions devolve alternativas ranqueadas.
// @Tags         locations
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID da localização"
// @Param        body  body  dto.ValidateCapacityRequest  true  "weightToAddKg e opções"
// @Success      200   {object}  map[string]interface{}
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/locations/{id}/validate-capacity [post]
func (h *InventoryHandler) ValidateCapacity(c *fiber.Ctx) error {
	var in dto.ValidateCapacityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	result, err := h.uc.ValidateLocationCapacity(c.Context(), c.Params("id"), in.WeightToAddKg, inventory.ValidateOptions{
		NewPlacement:    in.NewPlacement,
		WithSuggestions: in.WithSuggestions,
		MaxSuggestions:  in.MaxSuggestions,
	})
	if err != nil {
		return respondError(c, err)
	}
	body := fiber.Map{"valid": result.Valid, "code": result.Code}
	if !result.Valid && result.Code == inventory.CodeInsufficientCapacity {
		body["deficitKg"] = result.DeficitKg
	}
	if result.Analysis != nil {
		body["availableCapacityKg"] = result.Analysis.AvailableCapacityKg
		body["utilizationAfterPct"] = result.Analysis.UtilizationAfterPct
	}
	if len(result.Suggestions) > 0 {
		suggestions := make([]fiber.Map, 0, len(result.Suggestions))
		for _, s := range result.Suggestions {
			suggestions = append(suggestions, fiber.Map{
				"location": dto.ToLocationResponse(s.Location),
				"score":    s.Score,
			})
		}
		body["suggestions"] = suggestions
	}
	return c.JSON(body)
}

// ListProductMovements godoc
// @Summary      Histórico de movimentações de um produto
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        from    query  string  false  "Data inicial (RFC3339)"
// @Param        to      query  string  false  "Data final (RFC3339)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/products/{id}/movements [get]
func (h *InventoryHandler) ListProductMovements(c *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas devem estar em RFC3339"})
	}
	page := pageFromQuery(c)
	movements, err := h.uc.ListProductMovements(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponses(movements))
}

// ListLocationMovements godoc
// @Summary      Histórico de movimentações de uma localização
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID da localização"
// @Param        from    query  string  false  "Data inicial (RFC3339)"
// @Param        to      query  string  false  "Data final (RFC3339)"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.MovementResponse
// @Router       /api/locations/{id}/movements [get]
func (h *InventoryHandler) ListLocationMovements(c *fiber.Ctx) error {
	from, to, err := dateRangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datas devem estar em RFC3339"})
	}
	page := pageFromQuery(c)
	movements, err := h.uc.ListLocationMovements(c.Context(), c.Params("id"), from, to, page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponses(movements))
}

// ListPendingVerification godoc
// @Summary      Movimentações pendentes de verificação
// @Description  Lista movimentações não verificadas mais antigas que o corte (padrão 48h).
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        staleHours  query  int  false  "Corte em horas"  default(48)
// @Param        limit       query  int  false  "Limite"
// @Success      200         {array}  dto.MovementResponse
// @Router       /api/movements/pending-verification [get]
func (h *InventoryHandler) ListPendingVerification(c *fiber.Ctx) error {
	staleHours := c.QueryInt("staleHours", 0)
	limit := c.QueryInt("limit", 0)
	movements, err := h.verify.VerifyPending(c.Context(), staleHours, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(toMovementResponses(movements))
}

// VerifyMovement godoc
// @Summary      Marcar movimentação como verificada
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID da movimentação"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/movements/{id}/verify [post]
func (h *InventoryHandler) VerifyMovement(c *fiber.Ctx) error {
	if err := h.verify.MarkVerified(c.Context(), c.Params("id"), GetUserID(c)); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "movimentação verificada"})
}

func toMovementResponses(movements []*entity.Movement) []*dto.MovementResponse {
	out := make([]*dto.MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, dto.ToMovementResponse(m))
	}
	return out
}

// dateRangeFromQuery lê from/to em RFC3339 (ambos opcionais).
func dateRangeFromQuery(c *fiber.Ctx) (from, to *time.Time, err error) {
	if s := c.Query("from"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, perr := time.Parse(time.RFC3339, s)
		if perr != nil {
			return nil, nil, perr
		}
		to = &t
	}
	return from, to, nil
}
