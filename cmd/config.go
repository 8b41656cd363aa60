package main

import (
	"fmt"
	"time"
)

type Config struct {
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=8080" validate:"gt=0,lte=65535"`
	GrpcPort             int           `env:"GRPC_PORT,default=9090" validate:"gt=0,lte=65535"`
	MonitoringPort       int           `env:"MONITORING_PORT,default=8081" validate:"gt=0,lte=65535"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO" validate:"oneof=DEBUG INFO WARN ERROR"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=256" validate:"gt=0"`
	ReadTimeout          time.Duration `env:"READ_TIMEOUT,default=60s" validate:"gte=0"`
	WriteTimeout         time.Duration `env:"WRITE_TIMEOUT,default=10s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=1s" validate:"gt=0"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=30s" validate:"gt=0"`
	CensoredDir          string        `env:"CENSORED_DIR"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	ServerIdent          string        `env:"SERVER_IDENT,default=chat-broker/1.0"`
}

func (c Config) CharacterRune() (rune, error) {
	r := []rune(c.CharReplacement)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			c.CharReplacement,
		)
	}
	return r[0], nil
}

func (c Config) address(port int) string {
	return fmt.Sprintf("%s:%d", c.Host, port)
}
