package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DevJWTSecret is the fallback signing secret for local development only.
const DevJWTSecret = "secretkey"

type Config struct {
	AppEnv    string `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`
	APIPort   string `mapstructure:"PORT" validate:"required,numeric"`
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	JWTSecret  string `mapstructure:"JWT_SECRET"`
	BcryptCost int    `mapstructure:"BCRYPT_COST" validate:"gte=4,lte=31"`

	DBHost        string `mapstructure:"DB_HOST" validate:"required"`
	DBPort        string `mapstructure:"DB_PORT" validate:"required,numeric"`
	DBUser        string `mapstructure:"DB_USER" validate:"required"`
	DBPassword    string `mapstructure:"DB_PASSWORD"`
	DBName        string `mapstructure:"DB_NAME" validate:"required"`
	DBSslMode     string `mapstructure:"DB_SSLMODE" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns    int    `mapstructure:"DB_MAX_CONNS" validate:"gte=1,lte=1000"`
	DBAutoMigrate bool   `mapstructure:"DB_AUTO_MIGRATE"`

	CORSAllowedOrigins []string `mapstructure:"-"`

	ShutdownTimeout time.Duration `mapstructure:"-"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

var keys = []string{
	"APP_ENV",
	"PORT",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"JWT_SECRET",
	"BCRYPT_COST",
	"DB_HOST",
	"DB_PORT",
	"DB_USER",
	"DB_PASSWORD",
	"DB_NAME",
	"DB_SSLMODE",
	"DB_MAX_CONNS",
	"DB_AUTO_MIGRATE",
	"CORS_ALLOWED_ORIGINS",
	"SHUTDOWN_TIMEOUT",
}

// Load reads .env (if present), an optional config.yaml and the process
// environment, applies defaults and validates the result.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "4000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "reborntechhacklab")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_AUTO_MIGRATE", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	d, err := time.ParseDuration(v.GetString("SHUTDOWN_TIMEOUT"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}
	c.ShutdownTimeout = d
	c.CORSAllowedOrigins = splitList(v.GetString("CORS_ALLOWED_ORIGINS"))

	if c.JWTSecret == "" && c.AppEnv != "production" {
		c.JWTSecret = DevJWTSecret
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks field constraints and refuses the development fallbacks
// when running in production.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.AppEnv == "production" {
		if c.JWTSecret == "" || c.JWTSecret == DevJWTSecret {
			return errors.New("invalid configuration: JWT_SECRET must be set to a non-default value in production")
		}
		if c.DBPassword == "" {
			return errors.New("invalid configuration: DB_PASSWORD must be set in production")
		}
	}
	return nil
}

// DSN builds a pgx connection URL from the individual DB settings.
func (c *Config) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSslMode),
	}
	return u.String()
}

func (c *Config) Addr() string {
	return ":" + c.APIPort
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
