package http

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/voltia-api/internal/application/backend"
	"github.com/tu-usuario/voltia-api/internal/application/dto"
	"github.com/tu-usuario/voltia-api/internal/domain"
)

// Textos de error del protocolo del agente (en inglés: es lo que el agente
// lee en voz alta o interpreta). Todos los errores salen por errorJSON.
const (
	msgCustomerNotFound = "Customer not found"
	msgNoSearchCriteria = "No search criteria provided"
	msgInvalidBody      = "Invalid request body"
	msgInvalidDate      = "Invalid date format"
)

// BackendHandler expone las operaciones del backend al harness del agente.
type BackendHandler struct {
	svc *backend.Service
}

// NewBackendHandler construye el handler.
func NewBackendHandler(svc *backend.Service) *BackendHandler {
	return &BackendHandler{svc: svc}
}

// errorJSON traduce errores de dominio al mapeo {"error": "..."} del protocolo.
func errorJSON(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCustomerNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: msgCustomerNotFound})
	case errors.Is(err, domain.ErrNoSearchCriteria):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgNoSearchCriteria})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidBody})
	case errors.Is(err, domain.ErrInvalidDate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: msgInvalidDate})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}

// Lookup GET /api/customers/lookup?phone=&email=&id=
func (h *BackendHandler) Lookup(c *fiber.Ctx) error {
	customer, err := h.svc.GetCustomer(c.UserContext(), backend.LookupParams{
		Phone:      c.Query("phone"),
		Email:      c.Query("email"),
		CustomerID: c.Query("id"),
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(customer)
}

// Appointments GET /api/customers/:id/appointments
func (h *BackendHandler) Appointments(c *fiber.Ctx) error {
	out, err := h.svc.GetCustomerAppointments(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Contracts GET /api/customers/:id/contracts
func (h *BackendHandler) Contracts(c *fiber.Ctx) error {
	out, err := h.svc.GetCustomerContracts(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Billing GET /api/customers/:id/billing
func (h *BackendHandler) Billing(c *fiber.Ctx) error {
	out, err := h.svc.GetCustomerBilling(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// Usage GET /api/customers/:id/usage?days=30
func (h *BackendHandler) Usage(c *fiber.Ctx) error {
	days, _ := strconv.Atoi(c.Query("days", "30"))
	out, err := h.svc.GetCustomerUsage(c.UserContext(), c.Params("id"), days)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// PaymentMethods GET /api/customers/:id/payment-methods
func (h *BackendHandler) PaymentMethods(c *fiber.Ctx) error {
	out, err := h.svc.GetCustomerPaymentMethods(c.UserContext(), c.Params("id"))
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// ScheduleAppointment POST /api/appointments
func (h *BackendHandler) ScheduleAppointment(c *fiber.Ctx) error {
	var in dto.ScheduleAppointmentRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	date, err := parseISOTime(in.Date)
	if err != nil {
		return errorJSON(c, domain.ErrInvalidDate)
	}

	appointment, err := h.svc.ScheduleAppointment(c.UserContext(), in.CustomerID, date, in.Service)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(appointment)
}

// Slots GET /api/appointments/slots?start=...&end=...
func (h *BackendHandler) Slots(c *fiber.Ctx) error {
	start, err := parseISOTime(c.Query("start"))
	if err != nil {
		return errorJSON(c, domain.ErrInvalidDate)
	}
	end, err := parseISOTime(c.Query("end"))
	if err != nil {
		return errorJSON(c, domain.ErrInvalidDate)
	}

	out, err := h.svc.AvailableSlots(c.UserContext(), start, end)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(out)
}

// parseISOTime acepta ISO 8601 con o sin zona horaria ("2024-03-01T10:00:00Z"
// o "2024-03-01T10:00:00").
func parseISOTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}
