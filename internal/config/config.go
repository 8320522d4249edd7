package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/digitalnexcode/invoiceflow/internal/types"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Configuration struct {
	Deployment DeploymentConfig `validate:"required"`
	Server     ServerConfig     `validate:"required"`
	Logging    LoggingConfig    `validate:"required"`
	Postgres   PostgresConfig
	Auth       AuthConfig
	Yoco       YocoConfig
	Export     ExportConfig
}

type DeploymentConfig struct {
	Mode types.RunMode `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type AuthConfig struct {
	// Secret is the HMAC secret used to verify Supabase JWTs
	Secret   string
	Supabase SupabaseConfig
}

type SupabaseConfig struct {
	BaseURL    string
	ServiceKey string
}

// YocoConfig configures the payment link collaborator. The retry policy is
// applied at this boundary, never inside core computation.
type YocoConfig struct {
	BaseURL      string
	MaxRetries   int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
	TestMode     bool
}

// ExportConfig bounds a single PDF export call
type ExportConfig struct {
	Timeout time.Duration
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	// Load .env if present so local runs pick up secrets
	_ = godotenv.Load()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/invoiceflow")

	v.SetEnvPrefix("INVOICEFLOW")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("deployment.mode", types.ModeLocal)
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", types.LogLevelInfo)
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("postgres.maxopenconns", 10)
	v.SetDefault("postgres.maxidleconns", 5)
	v.SetDefault("yoco.baseurl", "https://payments.yoco.com/api")
	v.SetDefault("yoco.maxretries", 3)
	v.SetDefault("yoco.retrywaitmin", time.Second)
	v.SetDefault("yoco.retrywaitmax", 8*time.Second)
	v.SetDefault("export.timeout", 30*time.Second)
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// and tests that do not need a real backend.
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Deployment: DeploymentConfig{Mode: types.ModeLocal},
		Server:     ServerConfig{Address: ":8080"},
		Logging:    LoggingConfig{Level: types.LogLevelDebug},
		Yoco: YocoConfig{
			BaseURL:      "https://payments.yoco.com/api",
			MaxRetries:   3,
			RetryWaitMin: time.Second,
			RetryWaitMax: 8 * time.Second,
		},
		Export: ExportConfig{Timeout: 30 * time.Second},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"user=%s password=%s dbname=%s host=%s port=%d sslmode=%s",
		c.User,
		c.Password,
		c.DBName,
		c.Host,
		c.Port,
		c.SSLMode,
	)
}
