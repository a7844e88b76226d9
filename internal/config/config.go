package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/kiranchintala/app-booking/internal/domain"
)

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig       `toml:"server"`
	Logs               LogsConfig         `toml:"logs"`
	Metrics            MetricsConfig      `toml:"metrics"`
	Auth               AuthConfig         `toml:"auth"`
	Session            SessionConfig      `toml:"session"`
	Booking            BookingConfig      `toml:"booking"`
	Integrations       IntegrationsConfig `toml:"integrations"`
	CatalogService     ServiceEndpoint    `toml:"catalog_service"`
	AppointmentService ServiceEndpoint    `toml:"appointment_service"`
}

// ServerConfig настройки HTTP сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	ServiceName string `toml:"service_name"`
	Path        string `toml:"path"`
}

// AuthConfig настройки провайдера аутентификации
// Mode = "header" - реальный провайдер, user ID берётся из заголовка X-User-ID
// Mode = "mock"   - мок-провайдер для локальной разработки, user ID из конфига
type AuthConfig struct {
	Mode       string `toml:"mode"`
	MockUserID string `toml:"mock_user_id"`
}

// SessionConfig настройки хранилища черновиков бронирования
type SessionConfig struct {
	TTLMinutes             int `toml:"ttl_minutes"`
	CleanupIntervalMinutes int `toml:"cleanup_interval_minutes"`
}

// BookingConfig бизнес-настройки потока бронирования
type BookingConfig struct {
	OpenTime            string  `toml:"open_time"`
	CloseTime           string  `toml:"close_time"`
	SlotDurationMinutes int     `toml:"slot_duration_minutes"`
	PerGuestSurcharge   float64 `toml:"per_guest_surcharge"`
}

// IntegrationsConfig переключатель мок-слоя интеграций
// Mock = true включает in-process моки каталога и appointments API
// (только для non-production окружений)
type IntegrationsConfig struct {
	Mock bool `toml:"mock"`
}

// ServiceEndpoint адрес и таймаут интеграционного сервиса
type ServiceEndpoint struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// Load загружает конфигурацию из TOML файла
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8082,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			File:  "stdout",
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     false,
			ServiceName: "booking-flow",
			Path:        "/metrics",
		},
		Auth: AuthConfig{
			Mode: "header",
		},
		Session: SessionConfig{
			TTLMinutes:             60,
			CleanupIntervalMinutes: 10,
		},
		Booking: BookingConfig{
			OpenTime:            domain.DefaultOpenTime,
			CloseTime:           domain.DefaultCloseTime,
			SlotDurationMinutes: domain.DefaultSlotDurationMinutes,
			PerGuestSurcharge:   0,
		},
	}
}

func (c *Config) validate() error {
	if c.Auth.Mode != "header" && c.Auth.Mode != "mock" {
		return fmt.Errorf("invalid auth.mode %q: expected \"header\" or \"mock\"", c.Auth.Mode)
	}

	if c.Auth.Mode == "mock" && c.Auth.MockUserID == "" {
		return fmt.Errorf("auth.mock_user_id is required when auth.mode = \"mock\"")
	}

	if !c.Integrations.Mock {
		if c.CatalogService.URL == "" {
			return fmt.Errorf("catalog_service.url is required")
		}
		if c.AppointmentService.URL == "" {
			return fmt.Errorf("appointment_service.url is required")
		}
	}

	if c.Booking.SlotDurationMinutes <= 0 {
		return fmt.Errorf("booking.slot_duration_minutes must be positive")
	}

	return nil
}
