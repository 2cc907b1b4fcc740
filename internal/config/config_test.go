package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRequiresCredentials(t *testing.T) {
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT", "")
	t.Setenv("SPREADSHEET_ID", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrConfigMissing, "Без токена LINE конфигурация не должна собираться")

	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "token")
	_, err = Load()
	assert.ErrorIs(t, err, ErrConfigMissing, "Без сервисного аккаунта конфигурация не должна собираться")

	t.Setenv("GOOGLE_SERVICE_ACCOUNT", `{"type":"service_account"}`)
	_, err = Load()
	assert.ErrorIs(t, err, ErrConfigMissing, "Без идентификатора таблицы конфигурация не должна собираться")
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LINE_CHANNEL_ACCESS_TOKEN", "token")
	t.Setenv("GOOGLE_SERVICE_ACCOUNT", `{"type":"service_account"}`)
	t.Setenv("SPREADSHEET_ID", "sheet-id")
	t.Setenv("SHEET_NAME", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "Queue", cfg.SheetName, "Имя листа по умолчанию — Queue")
	assert.Equal(t, "8080", cfg.Port, "Порт по умолчанию — 8080")
}
