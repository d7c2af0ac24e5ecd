package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ppiankov/triage/internal/kb"
	"github.com/ppiankov/triage/internal/model"
)

func testConfig() model.Config {
	cfg := model.DefaultConfig()
	cfg.Console.Color = false
	return cfg
}

func TestRunWith_DumpToFile(t *testing.T) {
	cfg := testConfig()
	cfg.Session.DumpPath = filepath.Join(t.TempDir(), "kb.yaml")

	input := strings.NewReader("0\nreboot\n0\nreplace\nIs it damaged?\ny\n")
	var out, errOut bytes.Buffer

	require.NoError(t, runWith(context.Background(), cfg, input, &out, &errOut, zap.NewNop()))

	assert.Contains(t, errOut.String(), "Session ended: 1 questions, 3 outcomes, 3 cases")
	assert.Contains(t, errOut.String(), "Knowledge base written to")

	snap, err := kb.NewYAMLFile(cfg.Session.DumpPath).Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Is it damaged?"}, snap.Questions)
	assert.Equal(t, []string{model.OtherLabel, "reboot", "replace"}, snap.Outcomes)
	assert.Equal(t, []int64{2, 0, 0}, snap.Frequencies)
	require.Len(t, snap.Cases, 3)
	assert.Equal(t, map[int]string{0: "y"}, snap.Cases[2].Answers)
}

func TestRunWith_DumpToStdout(t *testing.T) {
	cfg := testConfig()
	cfg.Session.DumpPath = "-"
	cfg.Session.CacheEnabled = false

	var out, errOut bytes.Buffer
	require.NoError(t, runWith(context.Background(), cfg, strings.NewReader(""), &out, &errOut, zap.NewNop()))

	assert.Contains(t, out.String(), "version: 1")
	assert.NotContains(t, errOut.String(), "written to")
}

func TestRunWith_NoDump(t *testing.T) {
	cfg := testConfig()
	var out, errOut bytes.Buffer

	require.NoError(t, runWith(context.Background(), cfg, strings.NewReader("0\nreboot\n"), &out, &errOut, zap.NewNop()))
	assert.NotContains(t, out.String(), "version:")
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(model.LogConfig{Level: "info"}, false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))

	logger, err = newLogger(model.LogConfig{Level: "info"}, true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = newLogger(model.LogConfig{Level: "loud"}, false)
	assert.Error(t, err)
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triage.log")
	logger, err := newLogger(model.LogConfig{Level: "info", File: path}, false)
	require.NoError(t, err)

	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestWriteDefaultConfig(t *testing.T) {
	dir := filepath.Join(t.TempDir(), ".triage")

	path, err := writeDefaultConfig(dir)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "decline_tokens")
	assert.Contains(t, string(data), "cache_ttl: 30m0s")

	_, err = writeDefaultConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, model.DefaultConfig(), cfg)
}
