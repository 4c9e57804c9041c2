package config

import (
	"errors"
	"fmt"
	"reflect"
	"time"

	"shop-admin/internal/core/proxy"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the admin service.
// Tags used:
// - mapstructure: key read from the environment or the .env file
// - default: value applied when the key is missing
// - required: if "true", Load fails when the value is zero
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port the admin API listens on.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8090"`

	// Backend holds the e-commerce REST backend settings.
	Backend BackendConfig `mapstructure:",squash"`

	// Cache holds the stats cache settings.
	Cache CacheConfig `mapstructure:",squash"`

	// Upload holds the limits applied to image uploads.
	Upload UploadConfig `mapstructure:",squash"`
}

// BackendConfig describes how to reach the e-commerce backend.
type BackendConfig struct {
	// URL is the base URL of the backend, e.g. http://localhost:8080.
	URL string `mapstructure:"BACKEND_URL" required:"true"`
	// FilesURL is the base URL public file links are built from. Empty means URL.
	FilesURL string `mapstructure:"BACKEND_FILES_URL"`
	// Timeout bounds every backend request.
	Timeout time.Duration `mapstructure:"BACKEND_TIMEOUT" default:"10s"`
	// Proxy routes backend calls through an egress proxy when enabled.
	Proxy proxy.Settings `mapstructure:",squash"`
}

// PublicFilesURL returns the base used for file links.
func (b BackendConfig) PublicFilesURL() string {
	if b.FilesURL != "" {
		return b.FilesURL
	}
	return b.URL
}

// CacheConfig configures the optional Redis stats cache.
type CacheConfig struct {
	// RedisURL enables Redis when set: redis://[:password@]host[:port][/database]
	RedisURL string `mapstructure:"REDIS_URL"`
	// StatsTTL is how long stats responses stay cached.
	StatsTTL time.Duration `mapstructure:"STATS_CACHE_TTL" default:"30s"`
}

// UploadConfig holds the image upload limits.
type UploadConfig struct {
	// MaxBytes is the largest accepted image.
	MaxBytes int64 `mapstructure:"UPLOAD_MAX_BYTES" default:"5242880"`
	// MaxFiles is the largest batch accepted by a multiple upload.
	MaxFiles int `mapstructure:"UPLOAD_MAX_FILES" default:"10"`
}

// multipartOverhead covers part headers and boundaries around the images.
const multipartOverhead = 1 << 20

// BodyLimit is the request size that still fits a full batch of the largest images.
func (u UploadConfig) BodyLimit() int {
	files := u.MaxFiles
	if files < 1 {
		files = 1
	}
	return int(u.MaxBytes)*files + multipartOverhead
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	if err := processTags(v, &config); err != nil {
		return nil, err
	}

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// processTags binds every tagged key and registers its default in Viper.
func processTags(v *viper.Viper, config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := processTags(v, val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		if err := v.BindEnv(key); err != nil {
			return fmt.Errorf("failed to bind %s: %w", key, err)
		}

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
	return nil
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && isZero(val.Field(i)) {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}

// isZero checks if a reflect.Value is the zero value for its type.
func isZero(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.String:
		return v.String() == ""
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Slice, reflect.Map:
		return v.Len() == 0
	default:
		return v.IsZero()
	}
}
