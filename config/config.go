package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	OverlayLimit  int
	LogLevel      string

	// Геометрия RAW по умолчанию для бота и флагов CLI
	RawWidth    int
	RawHeight   int
	RawBitDepth int
	RawPattern  string
}

func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		LogLevel:      getString("LOG_LEVEL", "info"),
		RawPattern:    getString("RAW_PATTERN", "Mono"),
	}

	ints := []struct {
		key  string
		def  int
		dest *int
	}{
		{"OVERLAY_LIMIT", 2000, &cfg.OverlayLimit},
		{"RAW_WIDTH", 1920, &cfg.RawWidth},
		{"RAW_HEIGHT", 1080, &cfg.RawHeight},
		{"RAW_BIT_DEPTH", 10, &cfg.RawBitDepth},
	}
	for _, v := range ints {
		n, err := getInt(v.key, v.def)
		if err != nil {
			return nil, err
		}
		*v.dest = n
	}

	return cfg, nil
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%s must be a non-negative integer, got %q", key, v)
	}
	return n, nil
}
