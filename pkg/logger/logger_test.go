package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("verbose"))
}

func TestLogger_IncluyeServicioYComponente(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "info", Service: "vr46"})

	cl := l.Component("weighing")
	cl.Info().Str("material_id", "m-1").Msg("registro creado")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "vr46", line["service"])
	assert.Equal(t, "weighing", line["component"])
	assert.Equal(t, "m-1", line["material_id"])
	assert.Equal(t, "info", line["level"])
}

func TestLogger_FiltraPorNivel(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, Config{Level: "warn"})

	l.Info().Msg("no debe salir")
	assert.Zero(t, buf.Len())

	l.Warn().Msg("sí sale")
	assert.NotZero(t, buf.Len())
}
