package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/dto"
	"github.com/HKRAGD/megaSafraSistem-sub000/internal/application/inventory"
)

// WithdrawalHandler trata as requisições HTTP do fluxo de retirada (protegido).
type WithdrawalHandler struct {
	uc *inventory.WithdrawalUseCase
}

// NewWithdrawalHandler constrói o handler.
func NewWithdrawalHandler(uc *inventory.WithdrawalUseCase) *WithdrawalHandler {
	return &WithdrawalHandler{uc: uc}
}

// Request godoc
// @Summary      Solicitar retirada de um produto
// @Description  Transita o produto para AGUARDANDO_RETIRADA e cria a solicitação PENDENTE.
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.RequestWithdrawalRequest  true  "type (TOTAL|PARCIAL), quantityRequested, reason"
// @Success      201   {object}  dto.WithdrawalResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/withdrawals [post]
func (h *WithdrawalHandler) Request(c *fiber.Ctx) error {
	var in dto.RequestWithdrawalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "corpo inválido"})
	}
	request, err := h.uc.RequestWithdrawal(c.Context(), inventory.RequestWithdrawalInput{
		ProductID:         c.Params("id"),
		Type:              in.Type,
		QuantityRequested: in.QuantityRequested,
		Reason:            in.Reason,
	}, GetUserID(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToWithdrawalResponse(request))
}

// Confirm godoc
// @Summary      Confirmar a retirada pendente de um produto
// @Description  quantity nulo ou igual à quantidade restante conclui a retirada
//	total (produto RETIRADO); quantidade menor executa retirada parcial.
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.ConfirmWithdrawalRequest  false  "quantity, reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/withdrawals/confirm [post]
func (h *WithdrawalHandler) Confirm(c *fiber.Ctx) error {
	var in dto.ConfirmWithdrawalRequest
	_ = c.BodyParser(&in) // corpo opcional
	product, err := h.uc.ConfirmWithdrawal(c.Context(), c.Params("id"), in.Quantity, GetUserID(c), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// Cancel godoc
// @Summary      Cancelar a solicitação de retirada pendente
// @Tags         withdrawals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID do produto"
// @Param        body  body  dto.CancelWithdrawalRequest  false  "reason"
// @Success      200   {object}  dto.ProductResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/products/{id}/withdrawals/cancel [post]
func (h *WithdrawalHandler) Cancel(c *fiber.Ctx) error {
	var in dto.CancelWithdrawalRequest
	_ = c.BodyParser(&in) // corpo opcional
	product, err := h.uc.CancelWithdrawal(c.Context(), c.Params("id"), GetUserID(c), in.Reason)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.ToProductResponse(product))
}

// ListByProduct godoc
// @Summary      Histórico de solicitações de retirada de um produto
// @Tags         withdrawals
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID do produto"
// @Param        limit   query  int     false  "Limite"  default(20)
// @Param        offset  query  int     false  "Offset"  default(0)
// @Success      200     {array}  dto.WithdrawalResponse
// @Router       /api/products/{id}/withdrawals [get]
func (h *WithdrawalHandler) ListByProduct(c *fiber.Ctx) error {
	page := pageFromQuery(c)
	requests, err := h.uc.ListByProduct(c.Context(), c.Params("id"), page.Limit, page.Offset)
	if err != nil {
		return respondError(c, err)
	}
	out := make([]*dto.WithdrawalResponse, 0, len(requests))
	for _, w := range requests {
		out = append(out, dto.ToWithdrawalResponse(w))
	}
	return c.JSON(out)
}
