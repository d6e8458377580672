package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/multierr"
	"golang.org/x/text/currency"
)

type Config struct {
	App struct {
		Name string `mapstructure:"name" validate:"required"`
		Port string `mapstructure:"port" validate:"required,numeric"`
	} `mapstructure:"app"`

	Log struct {
		Level  string `mapstructure:"level" validate:"omitempty,oneof=panic fatal error warn warning info debug trace"`
		Format string `mapstructure:"format" validate:"omitempty,oneof=text json"`
	} `mapstructure:"log"`

	// APIKey may be empty: conversions then fail per request instead of at startup.
	Exchange struct {
		APIKey  string        `mapstructure:"api_key"`
		BaseURL string        `mapstructure:"base_url" validate:"required,url"`
		Timeout time.Duration `mapstructure:"timeout" validate:"gte=0"`
	} `mapstructure:"exchange"`

	CORS struct {
		AllowOrigins []string `mapstructure:"allow_origins" validate:"min=1,dive,url"`
	} `mapstructure:"cors"`

	Currencies []string `mapstructure:"currencies" validate:"dive,len=3"`

	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"metrics"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "exchange-service")
	v.SetDefault("app.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("exchange.api_key", "")
	v.SetDefault("exchange.base_url", "https://v6.exchangerate-api.com/v6")
	v.SetDefault("exchange.timeout", "0s")
	v.SetDefault("cors.allow_origins", []string{"http://localhost:3000", "http://127.0.0.1:3000"})
	v.SetDefault("currencies", []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "CHF", "CNY", "TRY"})
	v.SetDefault("metrics.enabled", true)
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win over it.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("../config")
	v.AddConfigPath("../../config")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// normalize lets LOG_LEVEL=INFO and similar spellings pass validation.
func (c *Config) normalize() {
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	c.Log.Format = strings.ToLower(strings.TrimSpace(c.Log.Format))
}

// Validate reports every invalid field at once.
func (c *Config) Validate() error {
	var errs error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		for _, fe := range fieldErrs {
			errs = multierr.Append(errs, fmt.Errorf("config %s: failed %q check (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
		}
	}

	for _, code := range c.Currencies {
		if _, err := currency.ParseISO(code); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("config currencies: %q is not an ISO 4217 code: %w", code, err))
		}
	}

	return errs
}

func (c *Config) Addr() string {
	return ":" + c.App.Port
}
