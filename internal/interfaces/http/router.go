package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/cerveceria-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	BeerUC     *usecase.BeerUseCase
	CustomerUC *usecase.CustomerUseCase
	OrderUC    *usecase.BeerOrderUseCase
	ShipmentUC *usecase.BeerOrderShipmentUseCase
}

// Router registra las rutas de la API bajo /api/v1.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	beers := api.Group("/beers")
	beerHandler := NewBeerHandler(deps.BeerUC)
	beers.Get("/", beerHandler.List)
	beers.Post("/", beerHandler.Create)
	beers.Get("/:beerId", beerHandler.GetByID)
	beers.Put("/:beerId", beerHandler.Update)
	beers.Patch("/:beerId", beerHandler.Patch)
	beers.Delete("/:beerId", beerHandler.Delete)

	customers := api.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Get("/", customerHandler.List)
	customers.Post("/", customerHandler.Create)
	customers.Get("/:customerId", customerHandler.GetByID)
	customers.Put("/:customerId", customerHandler.Update)
	customers.Delete("/:customerId", customerHandler.Delete)

	orders := api.Group("/beer-orders")
	orderHandler := NewBeerOrderHandler(deps.OrderUC)
	orders.Get("/", orderHandler.List)
	orders.Post("/", orderHandler.Create)
	orders.Get("/:orderId", orderHandler.GetByID)
	orders.Put("/:orderId", orderHandler.Update)
	orders.Delete("/:orderId", orderHandler.Delete)

	shipments := api.Group("/beer-order-shipments")
	shipmentHandler := NewBeerOrderShipmentHandler(deps.ShipmentUC)
	shipments.Get("/", shipmentHandler.List)
	shipments.Post("/", shipmentHandler.Create)
	// Ruta extra de lectura: envíos de un pedido concreto.
	shipments.Get("/beer-order/:beerOrderId", shipmentHandler.ListByBeerOrder)
	shipments.Get("/:shipmentId", shipmentHandler.GetByID)
	shipments.Put("/:shipmentId", shipmentHandler.Update)
	shipments.Delete("/:shipmentId", shipmentHandler.Delete)
}
