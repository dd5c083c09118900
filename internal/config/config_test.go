package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "launchdash.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, []float64{0, 2500, 5000, 7500, 10000}, cfg.Slider.Marks)
}

func TestLoadYAML(t *testing.T) {
	path := writeConfig(t, `
data_path: /data/launches.csv
listen: 127.0.0.1:9000
log:
  level: debug
slider:
  max: 12000
  marks: [0, 6000, 12000]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/launches.csv", cfg.DataPath)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset fields keep defaults")
	assert.Equal(t, 12000.0, cfg.Slider.Max)
	assert.Equal(t, 1000.0, cfg.Slider.Step)
	assert.Equal(t, []float64{0, 6000, 12000}, cfg.Slider.Marks)
}

func TestEnvOverridesYAML(t *testing.T) {
	path := writeConfig(t, "listen: :9000\nlog:\n  format: text\n")
	t.Setenv("LAUNCHDASH_LISTEN", ":7000")
	t.Setenv("LAUNCHDASH_LOG_FORMAT", "json")
	t.Setenv("LAUNCHDASH_SLIDER_MARKS", "0,5000,10000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7000", cfg.Listen)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []float64{0, 5000, 10000}, cfg.Slider.Marks)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "listen: [unclosed"))
	assert.ErrorContains(t, err, "parse config")

	t.Setenv("LAUNCHDASH_QUEUE_SIZE", "many")
	_, err = Load("")
	assert.ErrorContains(t, err, "parse env")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.DataPath = " "
	cfg.QueueSize = 0
	cfg.Log.Format = "xml"
	cfg.Slider.Max = -1

	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"data_path", "queue_size", "log.format", "slider range"} {
		assert.ErrorContains(t, err, want)
	}
}
