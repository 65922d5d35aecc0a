package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/voltia-api/internal/application/backend"
	"github.com/tu-usuario/voltia-api/internal/application/dto"
	"github.com/tu-usuario/voltia-api/internal/domain"
)

// AgentHandler mensajes del protocolo del agente (filler y despedida).
// El harness del agente es quien envía los mensajes; aquí solo se preparan.
type AgentHandler struct {
	svc *backend.Service
}

// NewAgentHandler construye el handler.
func NewAgentHandler(svc *backend.Service) *AgentHandler {
	return &AgentHandler{svc: svc}
}

// Filler POST /api/agent/filler
func (h *AgentHandler) Filler(c *fiber.Ctx) error {
	var in dto.AgentFillerRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	return c.JSON(h.svc.FillerMessage(in.MessageType))
}

// Farewell POST /api/agent/farewell
func (h *AgentHandler) Farewell(c *fiber.Ctx) error {
	var in dto.AgentFarewellRequest
	if err := c.BodyParser(&in); err != nil {
		return errorJSON(c, domain.ErrInvalidInput)
	}
	return c.JSON(h.svc.FarewellMessage(in.FarewellType))
}
