package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/voltia-api/internal/application/backend"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Backend *backend.Service
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Clientes: búsqueda y listados por cliente
	customers := api.Group("/customers")
	backendHandler := NewBackendHandler(deps.Backend)
	customers.Get("/lookup", backendHandler.Lookup)
	customers.Get("/:id/appointments", backendHandler.Appointments)
	customers.Get("/:id/contracts", backendHandler.Contracts)
	customers.Get("/:id/billing", backendHandler.Billing)
	customers.Get("/:id/usage", backendHandler.Usage)
	customers.Get("/:id/payment-methods", backendHandler.PaymentMethods)

	// Citas
	appointments := api.Group("/appointments")
	appointments.Get("/slots", backendHandler.Slots)
	appointments.Post("/", backendHandler.ScheduleAppointment)

	// Protocolo del agente
	agent := api.Group("/agent")
	agentHandler := NewAgentHandler(deps.Backend)
	agent.Post("/filler", agentHandler.Filler)
	agent.Post("/farewell", agentHandler.Farewell)
}
