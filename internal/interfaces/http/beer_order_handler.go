package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// BeerOrderHandler maneja las peticiones HTTP para BeerOrder.
type BeerOrderHandler struct {
	uc *usecase.BeerOrderUseCase
}

// NewBeerOrderHandler construye el handler.
func NewBeerOrderHandler(uc *usecase.BeerOrderUseCase) *BeerOrderHandler {
	return &BeerOrderHandler{uc: uc}
}

// List godoc
// @Summary      Listar pedidos
// @Tags         beer-orders
// @Produce      json
// @Success      200  {array}  dto.BeerOrderResponse
// @Router       /api/v1/beer-orders [get]
func (h *BeerOrderHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener pedido por ID (con sus líneas)
// @Tags         beer-orders
// @Produce      json
// @Param        orderId  path  int  true  "ID del pedido"
// @Success      200  {object}  dto.BeerOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-orders/{orderId} [get]
func (h *BeerOrderHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("orderId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "orderId debe ser un entero")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear pedido con líneas embebidas
// @Description  Cada línea referencia una cerveza existente por beerId; si alguna no existe, la operación completa falla y no persiste nada.
// @Tags         beer-orders
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BeerOrderRequest  true  "Datos del pedido"
// @Success      201  {object}  dto.BeerOrderResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-orders [post]
func (h *BeerOrderHandler) Create(c *fiber.Ctx) error {
	var in dto.BeerOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if !in.PaymentAmount.IsPositive() {
		return badRequest(c, "VALIDATION", "paymentAmount debe ser positivo")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar cabecera del pedido (PUT)
// @Description  Solo cambia customerRef, paymentAmount y status; las líneas no se tocan.
// @Tags         beer-orders
// @Accept       json
// @Produce      json
// @Param        orderId  path  int                   true  "ID del pedido"
// @Param        body     body  dto.BeerOrderRequest  true  "Datos de cabecera"
// @Success      200  {object}  dto.BeerOrderResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-orders/{orderId} [put]
func (h *BeerOrderHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("orderId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "orderId debe ser un entero")
	}
	var in dto.BeerOrderRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if !in.PaymentAmount.IsPositive() {
		return badRequest(c, "VALIDATION", "paymentAmount debe ser positivo")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "pedido no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar pedido (líneas y envíos caen en cascada)
// @Tags         beer-orders
// @Param        orderId  path  int  true  "ID del pedido"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-orders/{orderId} [delete]
func (h *BeerOrderHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("orderId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "orderId debe ser un entero")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !deleted {
		return notFound(c, "pedido no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
