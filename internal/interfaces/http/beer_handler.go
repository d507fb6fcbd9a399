package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/internal/application/dto"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
	"github.com/jhoicas/cerveceria-api/internal/domain/repository"
)

// BeerHandler maneja las peticiones HTTP para Beer.
type BeerHandler struct {
	uc *usecase.BeerUseCase
}

// NewBeerHandler construye el handler.
func NewBeerHandler(uc *usecase.BeerUseCase) *BeerHandler {
	return &BeerHandler{uc: uc}
}

// List godoc
// @Summary      Listar cervezas (completo o paginado/filtrado)
// @Tags         beers
// @Produce      json
// @Param        page      query  int     false  "Página (base cero)"  default(0)
// @Param        size      query  int     false  "Tamaño de página"    default(10)
// @Param        beerName  query  string  false  "Filtro substring por nombre (case-insensitive)"
// @Param        beerStyle query  string  false  "Filtro substring por estilo (case-insensitive)"
// @Success      200  {object}  dto.BeerPageResponse
// @Router       /api/v1/beers [get]
func (h *BeerHandler) List(c *fiber.Ctx) error {
	// Sin query params: listado legacy completo. Con cualquiera de ellos:
	// página con filtros opcionales.
	paged := c.Query("page") != "" || c.Query("size") != "" ||
		c.Query("beerName") != "" || c.Query("beerStyle") != ""
	if !paged {
		list, err := h.uc.List()
		if err != nil {
			return serviceError(c, err)
		}
		return c.JSON(list)
	}
	filter := repository.BeerFilter{
		BeerName:  c.Query("beerName"),
		BeerStyle: c.Query("beerStyle"),
		Page:      c.QueryInt("page", usecase.DefaultPage),
		Size:      c.QueryInt("size", usecase.DefaultSize),
	}
	page, err := h.uc.ListPaged(filter)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(page)
}

// GetByID godoc
// @Summary      Obtener cerveza por ID
// @Tags         beers
// @Produce      json
// @Param        beerId  path  int  true  "ID de la cerveza"
// @Success      200  {object}  dto.BeerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{beerId} [get]
func (h *BeerHandler) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("beerId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "beerId debe ser un entero")
	}
	out, err := h.uc.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "cerveza no encontrada")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear cerveza
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.BeerRequest  true  "Datos de la cerveza"
// @Success      201  {object}  dto.BeerResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/v1/beers [post]
func (h *BeerHandler) Create(c *fiber.Ctx) error {
	var in dto.BeerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if !in.Price.IsPositive() {
		return badRequest(c, "VALIDATION", "price debe ser positivo")
	}
	out, err := h.uc.Create(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Reemplazar cerveza (PUT)
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        beerId  path  int              true  "ID de la cerveza"
// @Param        body    body  dto.BeerRequest  true  "Datos completos"
// @Success      200  {object}  dto.BeerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{beerId} [put]
func (h *BeerHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("beerId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "beerId debe ser un entero")
	}
	var in dto.BeerRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if err := validate.Struct(in); err != nil {
		return badRequest(c, "VALIDATION", validationMessage(err))
	}
	if !in.Price.IsPositive() {
		return badRequest(c, "VALIDATION", "price debe ser positivo")
	}
	out, err := h.uc.Update(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "cerveza no encontrada")
	}
	return c.JSON(out)
}

// Patch godoc
// @Summary      Actualizar parcialmente una cerveza (PATCH)
// @Description  Solo los campos presentes en el cuerpo sobreescriben; los ausentes quedan intactos.
// @Tags         beers
// @Accept       json
// @Produce      json
// @Param        beerId  path  int                   true  "ID de la cerveza"
// @Param        body    body  dto.BeerPatchRequest  true  "Campos a cambiar"
// @Success      200  {object}  dto.BeerResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{beerId} [patch]
func (h *BeerHandler) Patch(c *fiber.Ctx) error {
	id, err := c.ParamsInt("beerId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "beerId debe ser un entero")
	}
	var in dto.BeerPatchRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "cuerpo inválido")
	}
	if in.Price != nil && !in.Price.IsPositive() {
		return badRequest(c, "VALIDATION", "price debe ser positivo")
	}
	out, err := h.uc.Patch(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	if out == nil {
		return notFound(c, "cerveza no encontrada")
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar cerveza
// @Tags         beers
// @Param        beerId  path  int  true  "ID de la cerveza"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/v1/beers/{beerId} [delete]
func (h *BeerHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("beerId")
	if err != nil {
		return badRequest(c, "INVALID_ID", "beerId debe ser un entero")
	}
	deleted, err := h.uc.Delete(id)
	if err != nil {
		return serviceError(c, err)
	}
	if !deleted {
		return notFound(c, "cerveza no encontrada")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
