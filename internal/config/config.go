package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-KartingFront/internal/domain"
	"github.com/m04kA/SMC-KartingFront/pkg/types"
)

// ErrInvalidConfig возвращается, когда конфигурация не прошла проверку
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server       ServerConfig       `toml:"server"`
	Logs         LogsConfig         `toml:"logs"`
	Metrics      MetricsConfig      `toml:"metrics"`
	Backend      BackendConfig      `toml:"backend"`
	Availability AvailabilityConfig `toml:"availability"`
	Sessions     SessionsConfig     `toml:"sessions"`
	CORS         CORSConfig         `toml:"cors"`
	RateLimit    RateLimitConfig    `toml:"ratelimit"`
}

// ServerConfig HTTP сервер, таймауты в секундах
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig логирование
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // пусто - только stdout
}

// MetricsConfig метрики Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// BackendConfig бэкенд бронирований трассы
type BackendConfig struct {
	URL          string `toml:"url"`
	Timeout      int    `toml:"timeout"`       // секунды, на один запрос
	FetchTimeout int    `toml:"fetch_timeout"` // секунды, на пару запросов занятых интервалов
}

// AvailabilityConfig часы работы и праздники
type AvailabilityConfig struct {
	Timezone    string   `toml:"timezone"`
	WeekdayOpen string   `toml:"weekday_open"`
	WeekendOpen string   `toml:"weekend_open"`
	Close       string   `toml:"close"`
	Holidays    []string `toml:"holidays"` // MM-DD
}

// SessionsConfig хранилище черновиков
type SessionsConfig struct {
	TTL           int `toml:"ttl"`            // минуты
	SweepInterval int `toml:"sweep_interval"` // секунды
}

// CORSConfig CORS для браузерного клиента
type CORSConfig struct {
	Enabled        bool     `toml:"enabled"`
	AllowedOrigins []string `toml:"allowed_origins"`
}

// RateLimitConfig ограничение запросов по IP
type RateLimitConfig struct {
	Enabled           bool    `toml:"enabled"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
	Burst             int     `toml:"burst"`
}

// Load загружает конфигурацию из TOML файла, заполняет значения по умолчанию и проверяет ее
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default конфигурация по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}

	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "karting_front"
	}

	if c.Backend.URL == "" {
		c.Backend.URL = "http://localhost:8090"
	}
	if c.Backend.Timeout == 0 {
		c.Backend.Timeout = 5
	}
	if c.Backend.FetchTimeout == 0 {
		c.Backend.FetchTimeout = 5
	}

	if c.Availability.Timezone == "" {
		c.Availability.Timezone = "America/Santiago"
	}
	if c.Availability.WeekdayOpen == "" {
		c.Availability.WeekdayOpen = domain.DefaultWeekdayOpen
	}
	if c.Availability.WeekendOpen == "" {
		c.Availability.WeekendOpen = domain.DefaultWeekendOpen
	}
	if c.Availability.Close == "" {
		c.Availability.Close = domain.DefaultClose
	}
	if c.Availability.Holidays == nil {
		c.Availability.Holidays = append([]string(nil), domain.DefaultHolidays...)
	}

	if c.Sessions.TTL == 0 {
		c.Sessions.TTL = 30
	}
	if c.Sessions.SweepInterval == 0 {
		c.Sessions.SweepInterval = 60
	}

	if c.RateLimit.RequestsPerSecond == 0 {
		c.RateLimit.RequestsPerSecond = 10
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 20
	}
}

// Validate проверяет конфигурацию
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port %d", ErrInvalidConfig, c.Server.HTTPPort)
	}

	u, err := url.Parse(c.Backend.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: backend.url %q", ErrInvalidConfig, c.Backend.URL)
	}
	if c.Backend.Timeout < 0 || c.Backend.FetchTimeout < 0 {
		return fmt.Errorf("%w: backend timeouts must not be negative", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(c.Availability.Timezone); err != nil {
		return fmt.Errorf("%w: availability.timezone %q: %v", ErrInvalidConfig, c.Availability.Timezone, err)
	}

	hours, err := c.OperatingHours()
	if err != nil {
		return err
	}
	if !hours.WeekdayOpen.IsBefore(hours.Close) || !hours.WeekendOrHolidayOpen.IsBefore(hours.Close) {
		return fmt.Errorf("%w: opening time must be before closing time", ErrInvalidConfig)
	}

	if _, err := domain.NewHolidayCalendar(c.Availability.Holidays); err != nil {
		return fmt.Errorf("%w: availability.holidays: %v", ErrInvalidConfig, err)
	}

	if c.Sessions.TTL < 0 || c.Sessions.SweepInterval <= 0 {
		return fmt.Errorf("%w: sessions.ttl must not be negative, sessions.sweep_interval must be positive", ErrInvalidConfig)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("%w: ratelimit values must be positive", ErrInvalidConfig)
	}

	return nil
}

// OperatingHours часы работы трассы из секции availability
func (c *Config) OperatingHours() (domain.OperatingHours, error) {
	parse := func(name, value string) (types.TimeString, error) {
		t, err := types.NewTimeStringFromString(value)
		if err != nil {
			return "", fmt.Errorf("%w: availability.%s %q", ErrInvalidConfig, name, value)
		}
		return t, nil
	}

	weekday, err := parse("weekday_open", c.Availability.WeekdayOpen)
	if err != nil {
		return domain.OperatingHours{}, err
	}
	weekend, err := parse("weekend_open", c.Availability.WeekendOpen)
	if err != nil {
		return domain.OperatingHours{}, err
	}
	closing, err := parse("close", c.Availability.Close)
	if err != nil {
		return domain.OperatingHours{}, err
	}

	return domain.OperatingHours{
		WeekdayOpen:          weekday,
		WeekendOrHolidayOpen: weekend,
		Close:                closing,
	}, nil
}

// Location часовой пояс трассы
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Availability.Timezone)
}

// HolidayCalendar календарь праздников из секции availability
func (c *Config) HolidayCalendar() (domain.HolidayCalendar, error) {
	return domain.NewHolidayCalendar(c.Availability.Holidays)
}

// BackendTimeout таймаут одного запроса к бэкенду
func (c *Config) BackendTimeout() time.Duration {
	return time.Duration(c.Backend.Timeout) * time.Second
}

// FetchTimeout таймаут пары запросов занятых интервалов
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Backend.FetchTimeout) * time.Second
}

// SessionTTL время жизни черновика без активности
func (c *Config) SessionTTL() time.Duration {
	return time.Duration(c.Sessions.TTL) * time.Minute
}

// SweepInterval период очистки истекших черновиков
func (c *Config) SweepInterval() time.Duration {
	return time.Duration(c.Sessions.SweepInterval) * time.Second
}
