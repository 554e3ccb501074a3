package lib_test

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "git.lowcodeplatform.net/fabric/demo"
	"git.lowcodeplatform.net/fabric/demo/pkg/model"
)

// Простейшая структура для тестирования DecodeConfig и ConfigLoad (файловая ветка)
type simpleConfig struct {
	A string `toml:"a"`
}

// Для тестирования base64-ветки с массивом таблиц
type tableConfig struct {
	Table []struct {
		A string `toml:"a"`
	} `toml:"Table"`
}

func TestDecodeConfig_Success(t *testing.T) {
	t.Parallel()
	cfg := &simpleConfig{}
	err := lib.DecodeConfig(`a = "hello"`, cfg)
	assert.NoError(t, err)
	assert.Equal(t, "hello", cfg.A)
}

func TestDecodeConfig_Error(t *testing.T) {
	t.Parallel()
	cfg := &simpleConfig{}
	err := lib.DecodeConfig(`a = `, cfg) // некорректный TOML
	assert.Error(t, err)
}

func TestConfigLoad_NoFile(t *testing.T) {
	t.Parallel()
	cfg := &simpleConfig{}
	payload, err := lib.ConfigLoad("", cfg)
	assert.NoError(t, err)
	assert.Empty(t, payload)
}

func TestConfigLoad_EmptyFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "empty.cfg")
	require.NoError(t, os.WriteFile(path, []byte("  \n"), 0644))

	_, err := lib.ConfigLoad(path, &simpleConfig{})
	assert.ErrorIs(t, err, lib.ErrConfig)
}

func TestConfigLoad_FileBranch_Success(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "cfgfile.cfg")
	tomlStr := `a = "world"`
	require.NoError(t, os.WriteFile(path, []byte(tomlStr), 0644))

	cfg := &simpleConfig{}
	payload, err := lib.ConfigLoad(path, cfg)
	assert.NoError(t, err)
	assert.Equal(t, tomlStr, payload)
	assert.Equal(t, "world", cfg.A)
}

func TestConfigLoad_FileBranch_ReadError(t *testing.T) {
	t.Parallel()
	_, err := lib.ConfigLoad("no_such_file.cfg", &simpleConfig{})
	assert.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unable read configfile"))
}

func TestConfigLoad_Base64Branch_Success(t *testing.T) {
	t.Parallel()
	tomlStr := "[[Table]]\na = \"X\"\n"
	enc := base64.StdEncoding.EncodeToString([]byte(tomlStr))
	// повторим 10 раз, чтобы длина строки >200
	configEnc := strings.Repeat(enc, 10)

	cfg := &tableConfig{}
	payload, err := lib.ConfigLoad(configEnc, cfg)
	assert.NoError(t, err)
	assert.Equal(t, strings.Repeat(tomlStr, 10), payload)
	assert.Len(t, cfg.Table, 10)
}

func TestConfigLoad_Base64Branch_InvalidBase64(t *testing.T) {
	t.Parallel()
	_, err := lib.ConfigLoad(strings.Repeat("!", 201), &simpleConfig{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unable decode")
}

// тесты ниже меняют окружение процесса, поэтому без t.Parallel
func TestConfigLoad_ServiceDefaults(t *testing.T) {
	t.Setenv("PORT", "")

	var cfg model.Config
	_, err := lib.ConfigLoad("", &cfg)
	require.NoError(t, err)

	assert.Equal(t, model.ServiceBackend, cfg.Service)
	assert.Equal(t, "http://backend-service:5000", cfg.BackendURL)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout.Value)
	assert.Greater(t, cfg.WriteTimeout.Value, cfg.UpstreamTimeout.Value)
	assert.Equal(t, 102400, cfg.MaxRequestBodySize.Value)
	assert.False(t, cfg.EnablePprof.Value)

	cfg.SetDefaultPort()
	assert.Equal(t, "5000", cfg.Port)
	assert.NoError(t, cfg.Validate())

	cfg.Service = model.ServiceFrontend
	assert.NoError(t, cfg.Validate())
}

func TestConfigLoad_EnvAndFile(t *testing.T) {
	t.Setenv("SERVICE", "frontend")
	t.Setenv("UPSTREAM_TIMEOUT", "3")
	t.Setenv("PORT", "")

	path := filepath.Join(t.TempDir(), "frontend.cfg")
	require.NoError(t, os.WriteFile(path, []byte(`BackendURL = "http://localhost:5000/"`+"\n"+`Port = "8080"`), 0644))

	var cfg model.Config
	_, err := lib.ConfigLoad(path, &cfg)
	require.NoError(t, err)

	assert.Equal(t, model.ServiceFrontend, cfg.Service)
	assert.Equal(t, 3*time.Second, cfg.UpstreamTimeout.Value)

	cfg.SetDefaultPort()
	assert.Equal(t, "8080", cfg.Port)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:5000", cfg.BackendURL)
}
