package backend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFillerMessage_Lookup(t *testing.T) {
	svc, _ := buildService(t)

	out := svc.FillerMessage("lookup")
	assert.Equal(t, "queued", out.FunctionResponse.Status)
	assert.Equal(t, "lookup", out.FunctionResponse.MessageType)
	assert.Equal(t, "InjectAgentMessage", out.InjectMessage.Type)
	assert.Equal(t, "Let me look that up for you...", out.InjectMessage.Message)
}

func TestFillerMessage_Generico(t *testing.T) {
	svc, _ := buildService(t)

	out := svc.FillerMessage("general")
	assert.Equal(t, "One moment please...", out.InjectMessage.Message)
}

func TestFarewellMessage_PorTipo(t *testing.T) {
	svc, _ := buildService(t)

	cases := map[string]string{
		"thanks":  "Thank you for calling! Have a great day!",
		"help":    "I'm glad I could help! Have a wonderful day!",
		"general": "Goodbye! Have a nice day!",
		"":        "Goodbye! Have a nice day!",
	}
	for farewellType, want := range cases {
		out := svc.FarewellMessage(farewellType)
		assert.Equal(t, "closing", out.FunctionResponse.Status, "tipo %q", farewellType)
		assert.Equal(t, want, out.FunctionResponse.Message, "tipo %q", farewellType)
		assert.Equal(t, want, out.InjectMessage.Message, "tipo %q", farewellType)
		assert.Equal(t, "close", out.CloseMessage.Type, "siempre cierra la conversación")
	}
}
