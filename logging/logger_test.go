package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("info", "json", buf)

	logger.Debug().Msg("hidden")
	logger.Info().Str("resource", "planets").Msg("listed")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "planets", entry["resource"])
	assert.Equal(t, "listed", entry["message"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("loud"))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
}

func TestGorm_RoutesThroughZerolog(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := New("debug", "json", buf)

	Gorm(logger).Info(testContext(t), "migrated %d tables", 5)

	assert.Contains(t, buf.String(), "migrated 5 tables")
	assert.Contains(t, buf.String(), `"component":"gorm"`)
}

// testContext stands in for testing.T.Context (Go 1.24+): the returned
// context is canceled when the test finishes.
func testContext(t testing.TB) context.Context {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
