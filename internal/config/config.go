package config

import (
	"errors"
	"fmt"
	"os"
)

// Config собирает все настройки процесса в одном месте.
// Заполняется один раз в main и передаётся дальше явно,
// чтобы не размазывать os.Getenv по обработчикам.
type Config struct {
	// Токен канала LINE Messaging API (Bearer).
	LineChannelToken string
	// Секрет канала для проверки подписи вебхука. Пустой — подпись не проверяем.
	LineChannelSecret string
	// JSON сервисного аккаунта Google (содержимое, не путь к файлу).
	GoogleServiceAccount string
	// Идентификатор таблицы Google Sheets с очередью.
	SpreadsheetID string
	// Имя листа с очередью. По умолчанию "Queue".
	SheetName string
	// Адрес Redis для распределённой блокировки вызова. Пустой — блокировка в памяти процесса.
	RedisAddr string
	// Порт HTTP-сервера. По умолчанию 8080.
	Port string
}

var ErrConfigMissing = errors.New("отсутствует обязательная настройка")

// Load читает настройки из переменных окружения и проверяет обязательные.
// Отсутствие обязательной настройки — ошибка конфигурации всего процесса,
// а не отдельного запроса.
func Load() (*Config, error) {
	cfg := &Config{
		LineChannelToken:     os.Getenv("LINE_CHANNEL_ACCESS_TOKEN"),
		LineChannelSecret:    os.Getenv("LINE_CHANNEL_SECRET"),
		GoogleServiceAccount: os.Getenv("GOOGLE_SERVICE_ACCOUNT"),
		SpreadsheetID:        os.Getenv("SPREADSHEET_ID"),
		SheetName:            os.Getenv("SHEET_NAME"),
		RedisAddr:            os.Getenv("REDIS_ADDR"),
		Port:                 os.Getenv("PORT"),
	}

	if cfg.LineChannelToken == "" {
		return nil, fmt.Errorf("LINE_CHANNEL_ACCESS_TOKEN не задан: %w", ErrConfigMissing)
	}
	if cfg.GoogleServiceAccount == "" {
		return nil, fmt.Errorf("GOOGLE_SERVICE_ACCOUNT не задан: %w", ErrConfigMissing)
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SPREADSHEET_ID не задан: %w", ErrConfigMissing)
	}

	if cfg.SheetName == "" {
		cfg.SheetName = "Queue"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg, nil
}
