package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tu-usuario/voltia-api/pkg/logger"
)

func TestNew_NivelFiltraEventos(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "warn", Out: &buf})

	log.Info().Msg("ruido")
	assert.Empty(t, buf.String(), "info por debajo de warn no debe emitirse")

	log.Warn().Msg("atención")
	out := buf.String()
	assert.Contains(t, out, `"level":"warn"`)
	assert.Contains(t, out, "atención")
}

func TestNew_NivelDesconocidoUsaInfo(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "production", Level: "verboso", Out: &buf})

	log.Debug().Msg("oculto")
	assert.Empty(t, buf.String(), "debug no pasa con el nivel por defecto")

	log.Info().Msg("visible")
	assert.Contains(t, buf.String(), "visible")
}

func TestNew_DevelopmentUsaConsolaLegible(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: &buf})

	log.Info().Msg("arrancando")
	out := buf.String()
	assert.Contains(t, out, "arrancando")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"),
		"en development la salida es consola formateada, no JSON")
}
