package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

// applyEnv sobrescreve os campos cujas variáveis de ambiente estão definidas.
func (r *ConfigRepositoryImpl) applyEnv(cfg *types.Config) error {
	r.envString("APP_ENV", &cfg.Env)
	r.envString("TZ", &cfg.Timezone)
	r.envString("CURRENCY", &cfg.Currency)
	r.envString("BRAND_NAME", &cfg.BrandName)

	r.envString("API_BASE_URL", &cfg.API.BaseURL)
	r.envString("API_USERNAME", &cfg.API.Username)
	r.envString("API_PASSWORD", &cfg.API.Password)
	r.envString("API_APP_KEY", &cfg.API.AppKey)

	r.envString("MAIL_TRANSPORT", &cfg.Mail.Transport)
	r.envString("SMTP_HOST", &cfg.Mail.Host)
	r.envString("SMTP_USERNAME", &cfg.Mail.Username)
	r.envString("SMTP_PASSWORD", &cfg.Mail.Password)
	r.envString("SMTP_FROM", &cfg.Mail.From)
	r.envString("SMTP_FROM_NAME", &cfg.Mail.FromName)
	r.envString("RESEND_API_KEY", &cfg.Mail.ResendAPIKey)
	r.envList("EMAIL_RECIPIENTS", &cfg.Mail.Recipients)

	r.envString("CRON_SCHEDULE", &cfg.Schedule.Cron)
	r.envString("HTTP_ADDR", &cfg.Server.Addr)
	r.envList("CORS_ALLOWED_ORIGINS", &cfg.Server.AllowedOrigins)

	r.envString("CACHE_BACKEND", &cfg.Cache.Backend)
	r.envString("REDIS_URL", &cfg.Cache.RedisURL)
	r.envString("EXPORT_DIR", &cfg.Export.Dir)

	for _, v := range []struct {
		key string
		dst *int
	}{
		{"API_TIMEOUT", &cfg.API.TimeoutSeconds},
		{"SMTP_PORT", &cfg.Mail.Port},
		{"CACHE_TTL", &cfg.Cache.TTLSeconds},
		{"CACHE_SIZE", &cfg.Cache.Size},
		{"EXPORT_ROWS_PER_PAGE", &cfg.Export.RowsPerPage},
	} {
		if err := r.envInt(v.key, v.dst); err != nil {
			return err
		}
	}

	if raw, ok := r.lookupEnv("SMTP_TLS"); ok && raw != "" {
		tls, err := strconv.ParseBool(raw)
		if err != nil {
			return fmt.Errorf("invalid SMTP_TLS %q: %w", raw, err)
		}
		cfg.Mail.TLS = tls
	}
	return nil
}

func (r *ConfigRepositoryImpl) envString(key string, dst *string) {
	if v, ok := r.lookupEnv(key); ok && v != "" {
		*dst = strings.TrimSpace(v)
	}
}

func (r *ConfigRepositoryImpl) envInt(key string, dst *int) error {
	raw, ok := r.lookupEnv(key)
	if !ok || raw == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	*dst = n
	return nil
}

// envList lê listas separadas por vírgula, ignorando itens vazios.
func (r *ConfigRepositoryImpl) envList(key string, dst *[]string) {
	raw, ok := r.lookupEnv(key)
	if !ok || raw == "" {
		return
	}
	*dst = splitList(raw)
}

func splitList(raw string) []string {
	items := make([]string, 0)
	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
