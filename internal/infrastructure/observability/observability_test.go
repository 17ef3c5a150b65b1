package observability

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	otellog "go.opentelemetry.io/otel/log"
)

func TestInitLogger_JSONIncludesService(t *testing.T) {
	var buf bytes.Buffer
	initLogger(&buf, "arovia-web-test", false)

	log.Info().Msg("hello")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "arovia-web-test", entry["service"])
	assert.Equal(t, "hello", entry["message"])
}

func TestLoggerFromContext_WithoutSpan(t *testing.T) {
	logger := LoggerFromContext(context.Background())
	assert.NotNil(t, logger)
}

func TestInitMetrics_NoopProvider(t *testing.T) {
	metrics, err := InitMetrics()
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		RecordRequestMetric(context.Background(), metrics, "GET", "GET /doctors", 200, time.Millisecond)
		RecordAPICallMetric(context.Background(), metrics, "list_doctors", "success", time.Millisecond)
		RecordNotification(context.Background(), metrics, "error")
		RecordNotification(context.Background(), nil, "error")
	})
}

func TestSeverityFor(t *testing.T) {
	assert.Equal(t, otellog.SeverityWarn, severityFor(zerolog.WarnLevel))
	assert.Equal(t, otellog.SeverityError, severityFor(zerolog.ErrorLevel))
	assert.Equal(t, otellog.SeverityInfo, severityFor(zerolog.InfoLevel))
}
