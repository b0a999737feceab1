package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/MatheusLBDev/vetsoft/handlers"
)

// SetupRoutes defines all the routes for the application. Paths mirror the
// surface the clinic frontend already consumes.
func SetupRoutes(app *fiber.App) {
	// --- Clients & Pets ---
	app.Post("/clients/", handlers.HandleCreateClient)
	app.Get("/clients/", handlers.HandleGetClients)
	app.Get("/clients/:clientId", handlers.HandleGetClientByID)

	app.Post("/pets/", handlers.HandleCreatePet)
	app.Get("/pets/", handlers.HandleGetPets)
	app.Delete("/pets/:petId", handlers.HandleDeletePet)

	// --- Appointments ---
	app.Post("/appointments/", handlers.HandleCreateAppointment)
	app.Get("/appointments/", handlers.HandleGetAppointments)
	app.Put("/appointments/:appointmentId/status", handlers.HandleUpdateAppointmentStatus)

	// --- Inventory & POS ---
	inventory := app.Group("/inventory")
	inventory.Get("/products", handlers.HandleGetProducts)
	inventory.Post("/products", handlers.HandleCreateProduct)
	inventory.Put("/products/:productId", handlers.HandleUpdateProduct)
	inventory.Delete("/products/:productId", handlers.HandleDeleteProduct)

	inventory.Get("/services", handlers.HandleGetServices)
	inventory.Post("/services", handlers.HandleCreateService)
	inventory.Put("/services/:serviceId", handlers.HandleUpdateService)
	inventory.Delete("/services/:serviceId", handlers.HandleDeleteService)

	inventory.Get("/sales", handlers.HandleGetSales)
	inventory.Post("/sales", handlers.HandleCreateSale)

	// --- Forecast ---
	app.Get("/forecast/sales", handlers.HandleGetSalesForecast)
	app.Post("/forecast/insights", handlers.HandleGetForecastInsights)
}
