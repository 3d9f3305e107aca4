package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	RunAddress     string `env:"RUN_ADDRESS"`
	DatabaseDSN    string `env:"DATABASE_URI"`
	MigrationsDir  string `env:"MIGRATIONS_DIR"`
	GatewayBaseURL string `env:"GATEWAY_BASE_URL"`
	GatewaySecret  string `env:"GATEWAY_SECRET_KEY"`
	// Адреса фронта, на которые шлюз возвращает покупателя после чекаута.
	CheckoutSuccessURL string `env:"CHECKOUT_SUCCESS_URL"`
	CheckoutCancelURL  string `env:"CHECKOUT_CANCEL_URL"`
}

func LoadConfig() (*Config, error) {
	var flagsConfig, envConfig Config

	if envParseErr := env.Parse(&envConfig); envParseErr != nil {
		return nil, fmt.Errorf("parse env config: %s", envParseErr.Error())
	}

	loadFlags(&flagsConfig)

	conf := mergeConfig(&envConfig, &flagsConfig)
	if conf.DatabaseDSN == "" {
		return nil, errors.New("database DSN is not set")
	}
	if conf.GatewaySecret == "" {
		return nil, errors.New("payment gateway secret key is not set")
	}
	return conf, nil
}

func MustLoadConfig() *Config {
	config, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return config
}

func loadFlags(flagConfig *Config) {
	flag.StringVar(&flagConfig.RunAddress, "a", "localhost:8080", "Run address in format host:port")
	flag.StringVar(&flagConfig.DatabaseDSN, "d", "", "Database DSN")
	flag.StringVar(&flagConfig.MigrationsDir, "m", "internal/db/migrations", "Database migrations directory")
	flag.StringVar(&flagConfig.GatewayBaseURL, "g", "https://api.stripe.com", "Payment gateway base URL")
	flag.StringVar(&flagConfig.GatewaySecret, "s", "", "Payment gateway secret key")
	flag.StringVar(&flagConfig.CheckoutSuccessURL, "success-url",
		"http://localhost:3000/thank-you?session_id={CHECKOUT_SESSION_ID}", "Checkout success redirect URL")
	flag.StringVar(&flagConfig.CheckoutCancelURL, "cancel-url",
		"http://localhost:3000/checkout", "Checkout cancel redirect URL")

	flag.Parse()
}

func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		RunAddress:         defaultIfBlank(envConfig.RunAddress, flagsConfig.RunAddress),
		DatabaseDSN:        defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		MigrationsDir:      defaultIfBlank(envConfig.MigrationsDir, flagsConfig.MigrationsDir),
		GatewayBaseURL:     defaultIfBlank(envConfig.GatewayBaseURL, flagsConfig.GatewayBaseURL),
		GatewaySecret:      defaultIfBlank(envConfig.GatewaySecret, flagsConfig.GatewaySecret),
		CheckoutSuccessURL: defaultIfBlank(envConfig.CheckoutSuccessURL, flagsConfig.CheckoutSuccessURL),
		CheckoutCancelURL:  defaultIfBlank(envConfig.CheckoutCancelURL, flagsConfig.CheckoutCancelURL),
	}
}

func defaultIfBlank(value string, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
