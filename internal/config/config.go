package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port              string `mapstructure:"PORT"`
	GinMode           string `mapstructure:"GIN_MODE"`
	MongoURI          string `mapstructure:"MONGODB_URI"`
	MongoDatabase     string `mapstructure:"MONGODB_DATABASE"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	PaymentSecretKey  string `mapstructure:"PAYMENT_SECRET_KEY"`
	ClientURL         string `mapstructure:"CLIENT_URL"`
}

// LoadConfig loads configuration from the environment using Viper. A
// local .env file is loaded first when present (development convenience;
// missing file is not an error).
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MONGODB_DATABASE", "proDrawing")

	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("MONGODB_URI")
	viper.BindEnv("MONGODB_DATABASE")
	viper.BindEnv("ACCESS_TOKEN_SECRET")
	viper.BindEnv("PAYMENT_SECRET_KEY")
	viper.BindEnv("CLIENT_URL")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGODB_URI is required")
	}
	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.PaymentSecretKey == "" {
		return nil, errors.New("PAYMENT_SECRET_KEY is required")
	}

	return &cfg, nil
}
