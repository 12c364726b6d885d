package logging_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LadyLoBentley/AdaptableDFA/logging"
)

// TestNewDefaults checks the zero Config resolves to info/text.
func TestNewDefaults(t *testing.T) {
	l, err := logging.New(logging.Config{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
	assert.IsType(t, &logrus.TextFormatter{}, l.Formatter)
}

// TestNewJSON checks JSON output carries fields.
func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "debug", Format: logging.FormatJSON, Output: &buf})
	require.NoError(t, err)

	l.WithField("state", "q_0").Debug("state created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "state created", entry["msg"])
	assert.Equal(t, "q_0", entry["state"])
	assert.Equal(t, "debug", entry["level"])
}

// TestNewLevelFilter checks entries below the level are dropped.
func TestNewLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(logging.Config{Level: "warn", Output: &buf})
	require.NoError(t, err)

	l.Info("hidden")
	assert.Empty(t, buf.String())
	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}

// TestValidate rejects bad levels and formats.
func TestValidate(t *testing.T) {
	assert.Error(t, logging.Config{Level: "loud"}.Validate())
	assert.ErrorIs(t, logging.Config{Format: "xml"}.Validate(), logging.ErrUnsupportedFormat)
	_, err := logging.New(logging.Config{Format: "xml"})
	assert.ErrorIs(t, err, logging.ErrUnsupportedFormat)
}

// TestDiscard checks the discard logger is silent.
func TestDiscard(t *testing.T) {
	l := logging.Discard()
	assert.False(t, l.IsLevelEnabled(logrus.ErrorLevel))
}
