package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadWithoutEnvFile(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err, "a missing .env must not fail startup")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ar", cfg.I18n.DefaultLanguage)
	assert.Equal(t, "rex_session", cfg.Session.CookieName)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadReadsEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	contents := "PORT=9090\nDB_NAME=rex\nI18N_DEFAULT_LANGUAGE=en\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(contents), 0o600))
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "rex", cfg.Database.DBName)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoadRejectsMalformedEnvFile(t *testing.T) {
	viper.Reset()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("{{{not dotenv"), 0o600))
	t.Chdir(dir)

	_, err := Load()
	require.Error(t, err)
}
