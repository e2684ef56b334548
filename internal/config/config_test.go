package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wheelibin/berlinuhr/internal/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func Test_ReadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.ReadConfig(viper.New(), "")
	require.NoError(t, err)

	assert.Equal(t, &config.Config{
		LogLevel:      "info",
		LogFile:       "",
		LineSeparator: "\n",
		Workers:       4,
	}, cfg)
}

func Test_ReadConfig_File(t *testing.T) {
	path := writeConfig(t, `{"logLevel": "debug", "logFile": "logs/berlinuhr.log", "lineSeparator": "\r\n", "workers": 2}`)

	cfg, err := config.ReadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "logs/berlinuhr.log", cfg.LogFile)
	assert.Equal(t, "\r\n", cfg.LineSeparator)
	assert.Equal(t, 2, cfg.Workers)
}

func Test_ReadConfig_Env(t *testing.T) {
	t.Setenv("BERLINUHR_WORKERS", "7")
	path := writeConfig(t, `{"workers": 2}`)

	cfg, err := config.ReadConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Workers)
}

func Test_ReadConfig_Errors(t *testing.T) {

	tests := []struct {
		name string
		path string
	}{
		{name: "missing explicit file", path: filepath.Join(t.TempDir(), "nope.json")},
		{name: "invalid json", path: writeConfig(t, `{"workers": `)},
		{name: "no workers", path: writeConfig(t, `{"workers": 0}`)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := config.ReadConfig(viper.New(), test.path)
			assert.Error(t, err)
		})
	}
}
