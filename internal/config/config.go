// Package config загружает конфигурацию сервиса нормализации из
// переменных окружения с разумными значениями по умолчанию.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config конфигурация сервиса нормализации
type Config struct {
	// Пул воркеров
	WorkerPoolSize int `json:"worker_pool_size"`

	// Ограничение скорости приема фоновых задач; ноль отключает лимитер
	RateLimitPerSecond float64 `json:"rate_limit_per_second"`
	RateBurst          int     `json:"rate_burst"`

	// Морфология
	MorphCacheSize int `json:"morph_cache_size"`

	// Путь к SQLite с дополнениями словарей; пустая строка отключает
	LexiconSQLitePath string `json:"lexicon_sqlite_path"`

	// Логирование
	LogLevel string `json:"log_level"`
}

// LoadConfig загружает конфигурацию из переменных окружения
func LoadConfig() (*Config, error) {
	config := &Config{
		WorkerPoolSize:     getEnvInt("WORKER_POOL_SIZE", 8),
		RateLimitPerSecond: getEnvFloat("RATE_LIMIT_PER_SECOND", 0),
		RateBurst:          getEnvInt("RATE_BURST", 16),
		MorphCacheSize:     getEnvInt("MORPH_CACHE_SIZE", 4096),
		LexiconSQLitePath:  os.Getenv("LEXICON_SQLITE_PATH"),
		LogLevel:           getEnv("LOG_LEVEL", "INFO"),
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.WorkerPoolSize <= 0 {
		return fmt.Errorf("worker_pool_size должен быть положительным, получен %d", c.WorkerPoolSize)
	}
	if c.RateLimitPerSecond < 0 {
		return fmt.Errorf("rate_limit_per_second не может быть отрицательным, получен %g", c.RateLimitPerSecond)
	}
	if c.RateLimitPerSecond > 0 && c.RateBurst <= 0 {
		return fmt.Errorf("rate_burst должен быть положительным при включенном лимитере, получен %d", c.RateBurst)
	}
	if c.MorphCacheSize <= 0 {
		return fmt.Errorf("morph_cache_size должен быть положительным, получен %d", c.MorphCacheSize)
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("неизвестный уровень логирования %q", c.LogLevel)
	}
	return nil
}

// getEnv возвращает переменную окружения или значение по умолчанию
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getEnvInt возвращает целочисленную переменную окружения или
// значение по умолчанию при ошибке разбора
func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getEnvFloat возвращает вещественную переменную окружения или
// значение по умолчанию при ошибке разбора
func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}
