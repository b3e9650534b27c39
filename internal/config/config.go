package config

import (
	"os"
	"time"
)

type Config struct {
	HTTPAddr          string
	UserServiceURL    string
	ProductServiceURL string
	ClientTimeout     time.Duration
	ServiceName       string
}

// Load reads env config for one service binary. defaultAddr differs per
// binary; the downstream URLs only matter to the order service.
func Load(service, defaultAddr string) Config {
	return Config{
		HTTPAddr:          getenv("HTTP_ADDR", defaultAddr),
		UserServiceURL:    getenv("USER_SERVICE_URL", "http://localhost:8081"),
		ProductServiceURL: getenv("PRODUCT_SERVICE_URL", "http://localhost:8082"),
		ClientTimeout:     getenvDuration("CLIENT_TIMEOUT", 5*time.Second),
		ServiceName:       getenv("SERVICE_NAME", service),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
