package types

import (
	"time"
)

// Valores padrão, equivalentes aos do serviço de e-mail original.
const (
	DefaultAPIBaseURL    = "https://api-client.catalogak.net/api/v6/Viewer"
	DefaultAPITimeout    = 30
	DefaultSMTPHost      = "172.16.0.2"
	DefaultSMTPPort      = 25
	DefaultSMTPFrom      = "no-reply@absons.ae"
	DefaultSMTPFromName  = "The Burcurry Dashboard"
	DefaultCronSchedule  = "0 10 * * *"
	DefaultTimezone      = "Asia/Dubai"
	DefaultEnv           = "production"
	DefaultCurrency      = "AED"
	DefaultBrandName     = "The Burcurry"
	DefaultHTTPAddr      = ":8080"
	DefaultCacheBackend  = "memory"
	DefaultCacheTTL      = 300
	DefaultCacheSize     = 128
	DefaultMailTransport = "smtp"
	DefaultRowsPerPage   = 30
	EnvDevelopment       = "development"
	MailTransportSMTP    = "smtp"
	MailTransportResend  = "resend"
	CacheBackendMemory   = "memory"
	CacheBackendRedis    = "redis"
	CacheBackendNone     = "none"
)

// Config represents the application configuration, loaded from a file and the environment.
type Config struct {
	Env       string `json:"env" yaml:"env" toml:"env" validate:"oneof=development production test"`
	Timezone  string `json:"timezone" yaml:"timezone" toml:"timezone" validate:"required"`
	Currency  string `json:"currency" yaml:"currency" toml:"currency" validate:"required"`
	BrandName string `json:"brand_name" yaml:"brand_name" toml:"brand_name" validate:"required"`

	API      APIConfig      `json:"api" yaml:"api" toml:"api"`
	Mail     MailConfig     `json:"mail" yaml:"mail" toml:"mail"`
	Schedule ScheduleConfig `json:"schedule" yaml:"schedule" toml:"schedule"`
	Server   ServerConfig   `json:"server" yaml:"server" toml:"server"`
	Cache    CacheConfig    `json:"cache" yaml:"cache" toml:"cache"`
	Export   ExportConfig   `json:"export" yaml:"export" toml:"export"`
}

// APIConfig holds the POS viewer API endpoint and credentials.
type APIConfig struct {
	BaseURL        string `json:"base_url" yaml:"base_url" toml:"base_url" validate:"required,url"`
	Username       string `json:"username" yaml:"username" toml:"username" validate:"required"`
	Password       string `json:"password" yaml:"password" toml:"password" validate:"required"`
	AppKey         string `json:"app_key" yaml:"app_key" toml:"app_key" validate:"required"`
	TimeoutSeconds int    `json:"timeout_seconds" yaml:"timeout_seconds" toml:"timeout_seconds" validate:"min=1"`
}

// Timeout retorna o tempo máximo de espera de cada consulta.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// MailConfig holds the transport settings for the daily report email.
type MailConfig struct {
	Transport    string   `json:"transport" yaml:"transport" toml:"transport" validate:"oneof=smtp resend"`
	Host         string   `json:"host" yaml:"host" toml:"host" validate:"required_if=Transport smtp"`
	Port         int      `json:"port" yaml:"port" toml:"port" validate:"min=1,max=65535"`
	Username     string   `json:"username" yaml:"username" toml:"username"`
	Password     string   `json:"password" yaml:"password" toml:"password"`
	TLS          bool     `json:"tls" yaml:"tls" toml:"tls"`
	From         string   `json:"from" yaml:"from" toml:"from" validate:"required,email"`
	FromName     string   `json:"from_name" yaml:"from_name" toml:"from_name"`
	Recipients   []string `json:"recipients" yaml:"recipients" toml:"recipients" validate:"dive,email"`
	ResendAPIKey string   `json:"resend_api_key" yaml:"resend_api_key" toml:"resend_api_key" validate:"required_if=Transport resend"`
}

// ScheduleConfig controls when the daily report is triggered.
type ScheduleConfig struct {
	Cron string `json:"cron" yaml:"cron" toml:"cron" validate:"required"`
}

// ServerConfig controls the dashboard HTTP API.
type ServerConfig struct {
	Addr           string   `json:"addr" yaml:"addr" toml:"addr" validate:"required"`
	AllowedOrigins []string `json:"allowed_origins" yaml:"allowed_origins" toml:"allowed_origins"`
}

// CacheConfig selects where fetched collections are cached between requests.
type CacheConfig struct {
	Backend    string `json:"backend" yaml:"backend" toml:"backend" validate:"oneof=memory redis none"`
	TTLSeconds int    `json:"ttl_seconds" yaml:"ttl_seconds" toml:"ttl_seconds" validate:"min=1"`
	Size       int    `json:"size" yaml:"size" toml:"size" validate:"min=1"`
	RedisURL   string `json:"redis_url" yaml:"redis_url" toml:"redis_url" validate:"required_if=Backend redis"`
}

// TTL retorna a validade das entradas do cache.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// ExportConfig controls artifact rendering.
type ExportConfig struct {
	Dir         string `json:"dir" yaml:"dir" toml:"dir"`
	RowsPerPage int    `json:"rows_per_page" yaml:"rows_per_page" toml:"rows_per_page" validate:"min=1"`
}

// ApplyDefaults fills every unset field with its default value.
func (c *Config) ApplyDefaults() {
	setString(&c.Env, DefaultEnv)
	setString(&c.Timezone, DefaultTimezone)
	setString(&c.Currency, DefaultCurrency)
	setString(&c.BrandName, DefaultBrandName)

	setString(&c.API.BaseURL, DefaultAPIBaseURL)
	setInt(&c.API.TimeoutSeconds, DefaultAPITimeout)

	setString(&c.Mail.Transport, DefaultMailTransport)
	setString(&c.Mail.Host, DefaultSMTPHost)
	setInt(&c.Mail.Port, DefaultSMTPPort)
	setString(&c.Mail.From, DefaultSMTPFrom)
	setString(&c.Mail.FromName, DefaultSMTPFromName)

	setString(&c.Schedule.Cron, DefaultCronSchedule)
	setString(&c.Server.Addr, DefaultHTTPAddr)

	setString(&c.Cache.Backend, DefaultCacheBackend)
	setInt(&c.Cache.TTLSeconds, DefaultCacheTTL)
	setInt(&c.Cache.Size, DefaultCacheSize)

	setInt(&c.Export.RowsPerPage, DefaultRowsPerPage)
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

// IsDevelopment reports whether the report should also run at startup.
func (c *Config) IsDevelopment() bool {
	return c.Env == EnvDevelopment
}

func setString(dst *string, def string) {
	if *dst == "" {
		*dst = def
	}
}

func setInt(dst *int, def int) {
	if *dst == 0 {
		*dst = def
	}
}
