package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config конфигурация сервиса
type Config struct {
	Server         ServerConfig         `toml:"server"`
	Logs           LogsConfig           `toml:"logs"`
	Database       DatabaseConfig       `toml:"database"`
	Metrics        MetricsConfig        `toml:"metrics"`
	ProductService ProductServiceConfig `toml:"product_service"`
	Security       SecurityConfig       `toml:"security"`
}

// ServerConfig настройки HTTP-сервера
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"` // пусто = stdout
	Level string `toml:"level"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN возвращает строку подключения к PostgreSQL
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// MetricsConfig настройки Prometheus-метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// ProductServiceConfig настройки клиента продуктового сервиса
type ProductServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// SecurityConfig настройки anti-forgery токенов
type SecurityConfig struct {
	NonceSecret   string `toml:"nonce_secret"`
	NonceTTLHours int    `toml:"nonce_ttl_hours"`
}

// Load читает и валидирует конфигурацию из TOML-файла
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.HTTPPort <= 0 {
		return errors.New("config: server.http_port must be positive")
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return errors.New("config: database.host and database.dbname are required")
	}
	if c.ProductService.URL == "" {
		return errors.New("config: product_service.url is required")
	}
	if c.Security.NonceSecret == "" {
		return errors.New("config: security.nonce_secret is required")
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Server.ReadTimeout <= 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout <= 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout <= 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "bookings-dropdown-service"
	}
	if c.ProductService.Timeout <= 0 {
		c.ProductService.Timeout = 5
	}
	if c.Security.NonceTTLHours <= 0 {
		c.Security.NonceTTLHours = 24
	}
}
