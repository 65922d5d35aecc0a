package dto

import (
	"time"

	"github.com/tu-usuario/voltia-api/internal/domain/entity"
)

// ErrorResponse forma de error del protocolo del agente: un mapeo plano con
// clave "error". Es el único tipo de error que ve el llamador.
type ErrorResponse struct {
	Error string `json:"error"`
}

// CustomerContractsResponse contratos de un cliente.
type CustomerContractsResponse struct {
	CustomerID string            `json:"customer_id"`
	Contracts  []entity.Contract `json:"contracts"`
}

// CustomerBillingResponse historial de facturación de un cliente.
type CustomerBillingResponse struct {
	CustomerID     string        `json:"customer_id"`
	BillingHistory []entity.Bill `json:"billing_history"`
}

// CustomerUsageResponse consumo diario de un cliente, más reciente primero.
type CustomerUsageResponse struct {
	CustomerID string               `json:"customer_id"`
	UsageData  []entity.UsageRecord `json:"usage_data"`
}

// CustomerPaymentMethodsResponse métodos de pago de un cliente.
type CustomerPaymentMethodsResponse struct {
	CustomerID     string                 `json:"customer_id"`
	PaymentMethods []entity.PaymentMethod `json:"payment_methods"`
}

// CustomerAppointmentsResponse citas de un cliente.
type CustomerAppointmentsResponse struct {
	CustomerID   string               `json:"customer_id"`
	Appointments []entity.Appointment `json:"appointments"`
}

// ScheduleAppointmentRequest body para POST /api/appointments.
type ScheduleAppointmentRequest struct {
	CustomerID string `json:"customer_id"`
	Date       string `json:"date"` // ISO 8601
	Service    string `json:"service"`
}

// AvailableSlotsResponse horarios libres en el rango consultado.
type AvailableSlotsResponse struct {
	AvailableSlots []time.Time `json:"available_slots"`
}

// ── Protocolo del agente ──────────────────────────────────────────────────────
// Estas respuestas no envían nada por sí mismas: el handler externo del agente
// decide cuándo inyectar cada mensaje y cuándo cerrar la conexión.

// InjectMessage mensaje para inyectar en la conversación del agente.
type InjectMessage struct {
	Type    string `json:"type"` // siempre "InjectAgentMessage"
	Message string `json:"message"`
}

// CloseMessage orden de cierre de la conversación.
type CloseMessage struct {
	Type string `json:"type"` // siempre "close"
}

// AgentFillerRequest body para POST /api/agent/filler.
type AgentFillerRequest struct {
	MessageType string `json:"message_type"` // "lookup" o genérico
}

// FillerStatus resultado de la llamada de función del filler.
type FillerStatus struct {
	Status      string `json:"status"` // "queued"
	MessageType string `json:"message_type"`
}

// AgentFillerResponse respuesta de función + mensaje a inyectar, en ese orden.
type AgentFillerResponse struct {
	FunctionResponse FillerStatus  `json:"function_response"`
	InjectMessage    InjectMessage `json:"inject_message"`
}

// AgentFarewellRequest body para POST /api/agent/farewell.
type AgentFarewellRequest struct {
	FarewellType string `json:"farewell_type"` // "thanks", "help" o general
}

// FarewellStatus resultado de la llamada de función de despedida.
type FarewellStatus struct {
	Status  string `json:"status"` // "closing"
	Message string `json:"message"`
}

// AgentFarewellResponse despedida + cierre, para enviar en ese orden.
type AgentFarewellResponse struct {
	FunctionResponse FarewellStatus `json:"function_response"`
	InjectMessage    InjectMessage  `json:"inject_message"`
	CloseMessage     CloseMessage   `json:"close_message"`
}
