package backend

import "github.com/tu-usuario/voltia-api/internal/application/dto"

// Mensajes del protocolo del agente. Aquí solo se preparan: el handler
// externo (websocket) es quien los envía en el orden correcto, primero la
// respuesta de función y después la inyección.

// FillerMessage prepara el mensaje de relleno que el agente pronuncia
// mientras una operación está en curso.
func (s *Service) FillerMessage(messageType string) *dto.AgentFillerResponse {
	message := "One moment please..."
	if messageType == "lookup" {
		message = "Let me look that up for you..."
	}

	return &dto.AgentFillerResponse{
		FunctionResponse: dto.FillerStatus{Status: "queued", MessageType: messageType},
		InjectMessage:    dto.InjectMessage{Type: "InjectAgentMessage", Message: message},
	}
}

// FarewellMessage prepara la despedida y la orden de cierre de la conversación.
func (s *Service) FarewellMessage(farewellType string) *dto.AgentFarewellResponse {
	var message string
	switch farewellType {
	case "thanks":
		message = "Thank you for calling! Have a great day!"
	case "help":
		message = "I'm glad I could help! Have a wonderful day!"
	default:
		message = "Goodbye! Have a nice day!"
	}

	return &dto.AgentFarewellResponse{
		FunctionResponse: dto.FarewellStatus{Status: "closing", Message: message},
		InjectMessage:    dto.InjectMessage{Type: "InjectAgentMessage", Message: message},
		CloseMessage:     dto.CloseMessage{Type: "close"},
	}
}
