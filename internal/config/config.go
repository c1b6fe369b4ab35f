package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultEnvFile         = ".env"
	defaultPort            = "8080"
	defaultEnvironment     = "local"
	defaultTemplatesDir    = "templates"
	defaultPublicDir       = "public"
	defaultLocalesDir      = "locales"
	defaultLogLevel        = "info"
	defaultReadHeader      = 10 * time.Second
	defaultReadTimeout     = 15 * time.Second
	defaultWriteTimeout    = 15 * time.Second
	defaultIdleTimeout     = 60 * time.Second
	defaultRequestTimeout  = 30 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// Config captures runtime configuration for the storefront server.
type Config struct {
	Environment string
	DevMode     bool
	LogLevel    string
	Server      ServerConfig
	Paths       PathConfig
	Site        SiteConfig
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration
	ReadTimeout       time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	RequestTimeout    time.Duration
	ShutdownTimeout   time.Duration
}

// PathConfig locates templates, locales and static files on disk.
type PathConfig struct {
	Templates string
	Public    string
	Locales   string
}

// SiteConfig holds the public base URL used for canonical links and JSON-LD.
type SiteConfig struct {
	BaseURL string
}

// ValidationError lists fields that are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the dotenv file path. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap supplies explicit values that take precedence over everything else.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores the process environment (tests).
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load resolves configuration with precedence dotenv < OS env < explicit map.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := environmentValues(options)
	if err != nil {
		return Config{}, err
	}
	lookup := func(key string) (string, bool) {
		v, ok := values[key]
		return v, ok
	}

	port := stringWithDefault(lookup, "PORT", defaultPort)
	cfg := Config{
		Environment: strings.ToLower(stringWithDefault(lookup, "STOREFRONT_ENV", defaultEnvironment)),
		DevMode:     boolWithDefault(lookup, "STOREFRONT_DEV", false),
		LogLevel:    strings.ToLower(stringWithDefault(lookup, "LOG_LEVEL", defaultLogLevel)),
		Server: ServerConfig{
			Addr:              stringWithDefault(lookup, "STOREFRONT_ADDR", ":"+port),
			ReadHeaderTimeout: durationWithDefault(lookup, "STOREFRONT_READ_HEADER_TIMEOUT", defaultReadHeader),
			ReadTimeout:       durationWithDefault(lookup, "STOREFRONT_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:      durationWithDefault(lookup, "STOREFRONT_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:       durationWithDefault(lookup, "STOREFRONT_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:    durationWithDefault(lookup, "STOREFRONT_REQUEST_TIMEOUT", defaultRequestTimeout),
			ShutdownTimeout:   durationWithDefault(lookup, "STOREFRONT_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Paths: PathConfig{
			Templates: stringWithDefault(lookup, "STOREFRONT_TEMPLATES", defaultTemplatesDir),
			Public:    stringWithDefault(lookup, "STOREFRONT_PUBLIC", defaultPublicDir),
			Locales:   stringWithDefault(lookup, "STOREFRONT_LOCALES", defaultLocalesDir),
		},
		Site: SiteConfig{
			BaseURL: strings.TrimRight(stringWithDefault(lookup, "STOREFRONT_BASE_URL", ""), "/"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// IsProduction reports whether the server runs with production settings.
func (c Config) IsProduction() bool { return c.Environment == "prod" || c.Environment == "production" }

func environmentValues(options loaderOptions) (map[string]string, error) {
	values := make(map[string]string)
	if options.envFile != "" {
		dotEnv, err := godotenv.Read(options.envFile)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("config: read %s: %w", options.envFile, err)
		}
		for k, v := range dotEnv {
			values[k] = v
		}
	}
	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if !ok || key == "" {
				continue
			}
			values[key] = value
		}
	}
	for k, v := range options.envMap {
		values[k] = v
	}
	return values, nil
}

func validateConfig(cfg Config) error {
	var invalid []string
	if strings.TrimSpace(cfg.Server.Addr) == "" {
		invalid = append(invalid, "Server.Addr")
	}
	if cfg.Paths.Templates == "" {
		invalid = append(invalid, "Paths.Templates")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		invalid = append(invalid, "Server.ShutdownTimeout")
	}
	if cfg.Server.RequestTimeout <= 0 {
		invalid = append(invalid, "Server.RequestTimeout")
	}
	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func boolWithDefault(lookup func(string) (string, bool), key string, fallback bool) bool {
	if value, ok := lookup(key); ok && value != "" {
		switch strings.ToLower(value) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	return fallback
}
