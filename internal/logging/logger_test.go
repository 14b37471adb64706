package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level string
		want  hclog.Level
	}{
		{"debug", hclog.Debug},
		{"INFO", hclog.Info},
		{"error", hclog.Error},
		{"", hclog.Warn},
		{"chatty", hclog.Warn},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger := NewLogger("uvoxid", tt.level, false, &bytes.Buffer{})
			require.Equal(t, tt.want, logger.GetLevel())
		})
	}
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("uvoxid", "info", false, &buf)

	logger.Debug("hidden")
	logger.Info("packed codes", "count", 3)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "[INFO]")
	require.Contains(t, out, "uvoxid: packed codes: count=3")
	require.True(t, strings.HasSuffix(strings.Fields(out)[0], "Z"))
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("uvoxid", "debug", true, &buf)
	logger.Debug("parsed code", "format", "hex")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "parsed code", entry["@message"])
	require.Equal(t, "debug", entry["@level"])
	require.Equal(t, "uvoxid", entry["@module"])
	require.Equal(t, "hex", entry["format"])
}
