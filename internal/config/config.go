// Package config loads the server and CLI configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Client   ClientConfig   `mapstructure:"client"`
}

type ServerConfig struct {
	Port                     int        `mapstructure:"port" validate:"gte=1,lte=65535"`
	CORS                     CORSConfig `mapstructure:"cors"`
	ReadHeaderTimeoutSeconds int        `mapstructure:"read_header_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds   int        `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
	TLSCertFile              string     `mapstructure:"tls_cert_file" validate:"omitempty,file"`
	TLSKeyFile               string     `mapstructure:"tls_key_file" validate:"omitempty,file"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver" validate:"oneof=mysql postgres"`
	// DSN overrides every connection field below when set.
	DSN              string            `mapstructure:"dsn"`
	Host             string            `mapstructure:"host"`
	Port             int               `mapstructure:"port"`
	Database         string            `mapstructure:"database"`
	Username         string            `mapstructure:"username"`
	Password         string            `mapstructure:"password"`
	TLS              bool              `mapstructure:"tls"`
	Params           map[string]string `mapstructure:"params"`
	MaxOpenConns     int               `mapstructure:"max_open_conns"`
	MaxIdleConns     int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime  int               `mapstructure:"conn_max_lifetime_seconds"`
	TxTimeoutSeconds int               `mapstructure:"tx_timeout_seconds" validate:"gte=0"`
}

// TxTimeout bounds one review submission transaction.
func (c DatabaseConfig) TxTimeout() time.Duration {
	return time.Duration(c.TxTimeoutSeconds) * time.Second
}

type AuthConfig struct {
	Secret          string `mapstructure:"secret"`
	TokenTTLSeconds int    `mapstructure:"token_ttl_seconds" validate:"gt=0"`
}

// TokenTTL is the lifetime of an issued token.
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

type ClientConfig struct {
	ServerURL string `mapstructure:"server_url" validate:"omitempty,url"`
	Token     string `mapstructure:"token"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
	envFile    string
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/vocabreview")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
		envFile:    ".env",
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	// Variables already set in the environment win over the .env file.
	if err := godotenv.Load(loader.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", loader.envFile, err)
	}

	v := loader.viper

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allowed_origins", []string{"http://localhost:3000"})
	v.SetDefault("server.read_header_timeout_seconds", 10)
	v.SetDefault("server.shutdown_timeout_seconds", 10)
	v.SetDefault("database.driver", "mysql")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "vocabreview")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.tx_timeout_seconds", 5)
	v.SetDefault("auth.token_ttl_seconds", 86400)
	v.SetDefault("client.server_url", "http://localhost:8080")

	// Secrets are read from environment variables only
	envBindings := []struct {
		key string
		env string
	}{
		{key: "database.password", env: "DB_PASSWORD"},
		{key: "database.dsn", env: "DATABASE_DSN"},
		{key: "auth.secret", env: "AUTH_SECRET"},
		{key: "client.token", env: "VOCABREVIEW_TOKEN"},
	}
	for _, b := range envBindings {
		if err := v.BindEnv(b.key, b.env); err != nil {
			return nil, fmt.Errorf("failed to bind %s environment variable: %w", b.env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		return nil, translateValidationError(err, loader.translator)
	}

	return &cfg, nil
}
