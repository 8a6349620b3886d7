package obslog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestInitFromEnv_WritesFile(t *testing.T) {
	defer Set(nil)

	path := filepath.Join(t.TempDir(), "nested", "app.log")
	t.Setenv("LOG_TO_CONSOLE", "false")
	t.Setenv("LOG_TO_FILE", "true")
	t.Setenv("LOG_FILE", path)
	t.Setenv("LOG_FORMAT", "json")

	require.NoError(t, InitFromEnv())
	L().Info("hello", zap.String("k", "v"))
	require.NoError(t, L().Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello"`)
	assert.Contains(t, string(data), `"k":"v"`)
}

func TestInitFromEnv_NoOutputsIsNop(t *testing.T) {
	defer Set(nil)

	t.Setenv("LOG_TO_CONSOLE", "false")
	t.Setenv("LOG_TO_FILE", "false")

	require.NoError(t, InitFromEnv())
	assert.NotNil(t, L())
}

func TestSet_NilInstallsNop(t *testing.T) {
	Set(nil)
	assert.NotNil(t, L())
}
