package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/product-catalog/internal/config"
)

func TestConfigureJSONConsole(t *testing.T) {
	logger := logrus.New()
	var console bytes.Buffer

	closeFn, err := Configure(logger, &console, config.LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	defer closeFn()

	logger.WithField("product_id", 7).Debug("Product created")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(console.Bytes(), &entry))
	assert.Equal(t, "Product created", entry["msg"])
	assert.Equal(t, float64(7), entry["product_id"])
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())
}

func TestConfigureTeesToFile(t *testing.T) {
	logger := logrus.New()
	var console bytes.Buffer
	file := filepath.Join(t.TempDir(), "catalog.log")

	closeFn, err := Configure(logger, &console, config.LogConfig{
		Level:      "info",
		Format:     "text",
		File:       file,
		MaxSizeMB:  1,
		MaxBackups: 1,
		MaxAgeDays: 1,
	})
	require.NoError(t, err)

	logger.Info("Server started")
	logger.Debug("hidden")
	closeFn()

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Server started")
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, console.String(), "Server started")
}

func TestConfigureRejectsBadInput(t *testing.T) {
	_, err := Configure(logrus.New(), &bytes.Buffer{}, config.LogConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = Configure(logrus.New(), &bytes.Buffer{}, config.LogConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)
}
