package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/spf13/viper"
)

// DatabaseConfig holds the MySQL connection parameters. The password is
// never read from the config file, only from the DB_PASSWORD environment
// variable.
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port" validate:"gt=0,lte=65535"`
	Database        string `mapstructure:"database" validate:"required"`
	Username        string `mapstructure:"username" validate:"required"`
	Password        string `mapstructure:"password"`
	TLS             bool   `mapstructure:"tls"`
	TLSCACert       string `mapstructure:"tls_ca_cert"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime_seconds"`
}

// PortalConfig holds the news-portal behavior knobs.
type PortalConfig struct {
	ArticleLimit     int           `mapstructure:"article_limit" validate:"gt=0"`
	ArticlesCacheTTL time.Duration `mapstructure:"articles_cache_ttl"`
	TagsCacheTTL     time.Duration `mapstructure:"tags_cache_ttl"`
	RetryAttempts    uint          `mapstructure:"retry_attempts" validate:"gt=0"`
	RetryDelay       time.Duration `mapstructure:"retry_delay"`
}

// SecurityConfig holds HTTP hardening settings.
type SecurityConfig struct {
	EnableRateLimit       bool     `mapstructure:"enable_rate_limit"`
	RateLimitPerSecond    float64  `mapstructure:"rate_limit_per_second"`
	RateLimitBurst        int      `mapstructure:"rate_limit_burst"`
	EnableCORS            bool     `mapstructure:"enable_cors"`
	AllowedOrigins        []string `mapstructure:"allowed_origins"`
	EnableSecurityHeaders bool     `mapstructure:"enable_security_headers"`
	EnableRequestID       bool     `mapstructure:"enable_request_id"`
}

type Config struct {
	Port          int            `mapstructure:"port" validate:"gt=0,lte=65535"`
	EnablePage    bool           `mapstructure:"enable_page"`
	EnableSwagger bool           `mapstructure:"enable_swagger"`
	Database      DatabaseConfig `mapstructure:"database"`
	Portal        PortalConfig   `mapstructure:"portal"`
	Security      SecurityConfig `mapstructure:"security"`
}

// Loader reads the yaml configuration file, applies defaults and environment
// bindings, and validates the result.
type Loader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewLoader(configFile string) (*Loader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("create validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mednews")
	}

	return &Loader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (l *Loader) Load() (*Config, error) {
	v := l.viper

	v.SetDefault("port", 8080)
	v.SetDefault("enable_page", true)
	v.SetDefault("enable_swagger", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "news")
	v.SetDefault("database.username", "news")
	v.SetDefault("database.tls", false)
	v.SetDefault("database.tls_ca_cert", "ssl/ca.pem")
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("database.conn_max_lifetime_seconds", 300)
	v.SetDefault("portal.article_limit", 500)
	v.SetDefault("portal.articles_cache_ttl", 5*time.Minute)
	v.SetDefault("portal.tags_cache_ttl", 10*time.Minute)
	v.SetDefault("portal.retry_attempts", 3)
	v.SetDefault("portal.retry_delay", 2*time.Second)
	v.SetDefault("security.enable_rate_limit", true)
	v.SetDefault("security.rate_limit_per_second", 10.0)
	v.SetDefault("security.rate_limit_burst", 20)
	v.SetDefault("security.enable_cors", true)
	v.SetDefault("security.allowed_origins", []string{"*"})
	v.SetDefault("security.enable_security_headers", true)
	v.SetDefault("security.enable_request_id", true)

	// Secrets come from the environment only, never from the config file.
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("bind DB_PASSWORD environment variable: %w", err)
	}
	if err := v.BindEnv("database.host", "DB_HOST"); err != nil {
		return nil, fmt.Errorf("bind DB_HOST environment variable: %w", err)
	}
	if err := v.BindEnv("database.port", "DB_PORT"); err != nil {
		return nil, fmt.Errorf("bind DB_PORT environment variable: %w", err)
	}
	if err := v.BindEnv("database.username", "DB_USER"); err != nil {
		return nil, fmt.Errorf("bind DB_USER environment variable: %w", err)
	}
	if err := v.BindEnv("database.database", "DB_NAME"); err != nil {
		return nil, fmt.Errorf("bind DB_NAME environment variable: %w", err)
	}

	// A missing config file is fine, the defaults and environment carry a
	// complete configuration on their own.
	if err := v.ReadInConfig(); err != nil {
		_, notFound := err.(viper.ConfigFileNotFoundError)
		if !notFound && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("configuration file found but could not be read: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := l.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(l.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, found := uni.GetTranslator("en")
	if !found {
		return nil, nil, fmt.Errorf("english translator not found")
	}

	if err := entranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}

	return validate, trans, nil
}
