package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// E2E_BROKER_URL is the WebSocket endpoint of a running broker, e.g. ws://localhost:8080/
	BrokerURL string `envconfig:"E2E_BROKER_URL"`
	GrpcAddr  string `envconfig:"E2E_GRPC_ADDR"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
