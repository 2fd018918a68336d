package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	CatalogBaseURL string
	CatalogTimeout time.Duration

	CartBaseURL     string
	ShippingBaseURL string

	RabbitURL      string
	RabbitExchange string
}

func Load() Config {
	return Config{
		AppEnv:   getEnv("APP_ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		HTTPPort: getEnvInt("HTTP_PORT", 8080),

		CatalogBaseURL: getEnv("CATALOG_BASE_URL", "http://product-service:8080"),
		CatalogTimeout: getEnvDuration("CATALOG_TIMEOUT", 3*time.Second),

		CartBaseURL:     getEnv("CART_BASE_URL", "http://cart-service:8080"),
		ShippingBaseURL: getEnv("SHIPPING_BASE_URL", "http://shipping-service:8080"),

		RabbitURL:      getEnv("RABBIT_URL", ""),
		RabbitExchange: getEnv("RABBIT_EXCHANGE", "orders"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}

	return d
}
