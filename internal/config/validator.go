package config

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their environment variable name
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		if name := f.Tag.Get("env"); name != "" {
			return name
		}
		return f.Name
	})
	return v
}

// Validate checks the loaded configuration. Missing variables are reported
// together so a broken .env can be fixed in one pass.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var missing, invalid []string
	for _, e := range validationErrors {
		switch e.Tag() {
		case "required", "required_if":
			missing = append(missing, e.Field())
		default:
			invalid = append(invalid, fmt.Sprintf("%s (%s)", e.Field(), e.Tag()))
		}
	}
	sort.Strings(missing)
	sort.Strings(invalid)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "missing required environment variables: "+strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		parts = append(parts, "invalid environment variables: "+strings.Join(invalid, ", "))
	}
	return errors.New(strings.Join(parts, "; "))
}

// Warnings returns non-fatal configuration issues, like example values left in place
func Warnings(cfg *Config) []string {
	var warnings []string

	if cfg.ClientSecret == ExampleClientSecret {
		warnings = append(warnings, "CLIENT_SECRET appears to be using the example value")
	}
	if cfg.SecretKey == ExampleSecretKey {
		warnings = append(warnings, "SECRET_KEY appears to be using the example value - generate one with: openssl rand -hex 32")
	} else if len(cfg.SecretKey) < 32 {
		warnings = append(warnings, "SECRET_KEY is shorter than 32 characters")
	}
	if !cfg.IsDevelopment() && strings.HasPrefix(cfg.RedirectURI, "http://") {
		warnings = append(warnings, "REDIRECT_URI is not HTTPS outside development")
	}
	if cfg.UpstreamTimeout == 0 {
		warnings = append(warnings, "UPSTREAM_TIMEOUT is 0, upstream calls will never time out")
	}

	return warnings
}
