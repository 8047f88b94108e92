package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"

	"github.com/diillson/pos-sales-dashboard-go/internal/shared/types"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Reporta os campos com os nomes usados nos arquivos de configuração.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Validate checks cfg and returns a *types.ConfigError listing every problem found.
// requireMail adds the checks needed by commands that send email.
func (r *ConfigRepositoryImpl) Validate(cfg *types.Config, requireMail bool) error {
	cfgErr := &types.ConfigError{}

	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("error validating configuration: %w", err)
		}
		for _, fe := range fieldErrs {
			cfgErr.Add(describe(fe), fieldError(fe))
		}
	}

	if _, err := cfg.Location(); err != nil {
		cfgErr.Add(fmt.Sprintf("timezone %q is not a valid IANA zone", cfg.Timezone), err)
	}
	if _, err := cron.ParseStandard(cfg.Schedule.Cron); err != nil {
		cfgErr.Add(fmt.Sprintf("schedule.cron %q: %v", cfg.Schedule.Cron, err), err)
	}

	if requireMail && len(cfg.Mail.Recipients) == 0 {
		cfgErr.Add(types.ErrNoRecipients.Error(), types.ErrNoRecipients)
	}

	return cfgErr.OrNil()
}

func fieldError(fe validator.FieldError) error {
	if strings.HasPrefix(fe.Namespace(), "Config.api.") && fe.Tag() == "required" {
		return types.ErrMissingCredentials
	}
	return nil
}

func describe(fe validator.FieldError) string {
	field := strings.TrimPrefix(fe.Namespace(), "Config.")
	switch fe.Tag() {
	case "required", "required_if":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of [%s], got %q", field, fe.Param(), fmt.Sprint(fe.Value()))
	case "email":
		return fmt.Sprintf("%s: %q is not a valid email address", field, fmt.Sprint(fe.Value()))
	case "url":
		return fmt.Sprintf("%s: %q is not a valid URL", field, fmt.Sprint(fe.Value()))
	}
	return fmt.Sprintf("%s failed %s=%s", field, fe.Tag(), fe.Param())
}
