package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// BeerOrderShipmentHandler maneja las peticiones HTTP para envíos.
type BeerOrderShipmentHandler struct {
	uc *usecase.BeerOrderShipmentUseCase
}

// NewBeerOrderShipmentHandler construye el handler.
func NewBeerOrderShipmentHandler(uc *usecase.BeerOrderShipmentUseCase) *BeerOrderShipmentHandler {
	return &BeerOrderShipmentHandler{uc: uc}
}

// List godoc
// @Summary      Listar envíos
// @Tags         beer-order-shipments
// @Produce      json
// @Success      200  {array}  dto.BeerOrderShipmentResponse
// @Router       /api/v1/beer-order-shipments [get]
func (h *BeerOrderShipmentHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(list)
}

// ListByBeerOrder godoc
// @Summary      Listar envíos de un pedido
// @Tags         beer-order-shipments
// @Produce      json
// @Param        beerOrderId  path  int  true  "ID del pedido"
// @Success      200  {array}  dto.BeerOrderShipmentResponse
// @Router       /api/v1/beer-order-shipments/beer-order/{beerOrderId} [get]
func (h *BeerOrderShipmentHandler) ListByBeerOrder(c *fiber.Ctx) error {
	beerOrderID, err := c.ParamsInt("beerOrderId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "beerOrderId debe ser un entero")
	}
	list, err := h.uc.ListByBeerOrder(beerOrderID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Obtener envío por ID
// @Tags         beer-order-shipments
// @Produce      json
// @Param        shipmentId  path  int  true  "ID del envío"
// @Success      200  {object}  dto.BeerOrderShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-order-shipments/{shipmentId} [get]
func (h *BeerOrderShipmentHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("shipmentId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "shipmentId debe ser un entero")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "envío no encontrado")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear envío
// @Description  beerOrderId debe referenciar un pedido existente; si no, la operación falla con REFERENCE_NOT_FOUND.
// @Tags         beer-order-shipments
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BeerOrderShipmentRequest  true  "Datos del envío"
// @Success      201  {object}  dto.BeerOrderShipmentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-order-shipments [post]
func (h *BeerOrderShipmentHandler) Create(c *fiber.Ctx) error {
	var in dto.BeerOrderShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar envío (PUT)
// @Description  Si beerOrderId cambia, el envío se re-enlaza al nuevo pedido (que debe existir).
// @Tags         beer-order-shipments
// @Accept       json
// @Produce      json
// @Param        shipmentId  path  int                           true  "ID del envío"
// @Param        body        body  dto.BeerOrderShipmentRequest  true  "Datos completos"
// @Success      200  {object}  dto.BeerOrderShipmentResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-order-shipments/{shipmentId} [put]
func (h *BeerOrderShipmentHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("shipmentId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "shipmentId debe ser un entero")
	}
	var in dto.BeerOrderShipmentRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "envío no encontrado")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar envío
// @Tags         beer-order-shipments
// @Param        shipmentId  path  int  true  "ID del envío"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beer-order-shipments/{shipmentId} [delete]
func (h *BeerOrderShipmentHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("shipmentId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "shipmentId debe ser un entero")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !deleted {
		return notFound(c, "envío no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
