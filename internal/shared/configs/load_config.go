package configs

import (
	"fmt"
	"strings"

	"license-usage-aggregator/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "AGGREGATOR"

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("input.source", SourceLocal)
	v.SetDefault("input.s3.endpoint", "")
	v.SetDefault("input.s3.bucket", "")
	v.SetDefault("input.s3.access_key", "")
	v.SetDefault("input.s3.secret_key", "")
	v.SetDefault("input.s3.region", "")
	v.SetDefault("input.s3.use_ssl", true)
	v.SetDefault("aggregation.day_workers", 1)
	v.SetDefault("aggregation.skip_unreadable_tasks", false)
	v.SetDefault("aggregation.pvu_multiplier", 70)
	v.SetDefault("report.file_prefix", "products_daily")
	v.SetDefault("report.extension", "csv")
	v.SetDefault("report.use_crlf", true)
	v.SetDefault("metrics.textfile_path", "")
}

// LoadConfig reads configuration from defaults, an optional file and AGGREGATOR_* environment
// variables, then validates it. An empty configPath runs on defaults and environment only.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		for _, e := range validators.FieldErrors(err) {
			validationErrors = append(validationErrors, formatValidationError(e))
		}
		if len(validationErrors) == 0 {
			return nil, fmt.Errorf("config validation failed: %w", err)
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// Build field path (e.g., "aggregation.dayworkers")
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	var msg string
	switch tag {
	case "required":
		msg = fmt.Sprintf("%s (required)", field)
	case "min":
		msg = fmt.Sprintf("%s (min=%s)", field, e.Param())
	case "max":
		msg = fmt.Sprintf("%s (max=%s)", field, e.Param())
	case "oneof":
		msg = fmt.Sprintf("%s (oneof=%s)", field, e.Param())
	default:
		msg = fmt.Sprintf("%s (%s)", field, tag)
	}

	return msg
}
