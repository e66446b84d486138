package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("text format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "info", "text")

		logger.Info("hello", "key", "value")

		out := buf.String()
		assert.Contains(t, out, "hello")
		assert.Contains(t, out, "key=value")
	})

	t.Run("json format", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "info", "json")

		logger.Info("hello", "key", "value")

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "hello", entry["msg"])
		assert.Equal(t, "value", entry["key"])
	})

	t.Run("level filtering", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "warn", "text")

		logger.Info("quiet")
		logger.Warn("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})

	t.Run("unknown level falls back to info", func(t *testing.T) {
		var buf bytes.Buffer
		logger := NewLogger(&buf, "shout", "text")

		logger.Info("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	m.RowsLoaded.Add(5)
	m.RowsDropped.Inc()
	m.ValuesImputed.WithLabelValues("temperature").Add(2)

	assert.Equal(t, 5.0, testutil.ToFloat64(m.RowsLoaded))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RowsDropped))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ValuesImputed.WithLabelValues("temperature")))

	t.Run("private registries are independent", func(t *testing.T) {
		other := NewMetrics()
		assert.Equal(t, 0.0, testutil.ToFloat64(other.RowsLoaded))

		families, err := m.Registry().Gather()
		require.NoError(t, err)
		assert.NotEmpty(t, families)
	})
}
