package main

import (
	"chat-broker/contract"
	"chat-broker/moderation"
	"chat-broker/observability"
	"chat-broker/runtime"
	"chat-broker/runtime/workers"
	"chat-broker/transport/wamp"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

// Exit codes to provide meaningful status to the operating system or service manager (e.g., systemd).
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const healthService = "chat-broker"

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Broker terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run wires the broker, then blocks until SIGINT or SIGTERM.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	if err := validator.New().Struct(config); err != nil {
		return exitConfig, fmt.Errorf("invalid config: %w", err)
	}
	charReplacement, err := config.CharacterRune()
	if err != nil {
		return exitConfig, err
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Moderation, optional
	moderator, err := loadModerator(log, config.CensoredDir, charReplacement)
	if err != nil {
		return exitConfig, err
	}

	// 3. Broker
	monitoring := observability.NewMonitoringManager(log)
	dispatcher := runtime.NewDispatcher(log, moderator, monitoring)
	monitoring.SetStateProvider(dispatcher.State)

	handler := wamp.NewHandler(log, dispatcher, wamp.Config{
		ServerIdent:          config.ServerIdent,
		ConnectionBufferSize: config.ConnectionBufferSize,
		ReadTimeout:          config.ReadTimeout,
		WriteTimeout:         config.WriteTimeout,
	})

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Supervision
	sup := addBrokerWorkers(workers.NewSupervisor(log, config.RestartInterval), log, config, handler, monitoring)

	log.Info("Starting broker", "port", config.Port, "grpc_port", config.GrpcPort, "monitoring_port", config.MonitoringPort)
	sup.Run(ctx)
	if ctx.Err() == nil {
		return exitRuntime, fmt.Errorf("all workers exited before shutdown")
	}
	log.Info("Program stopped cleanly")

	return exitOK, nil
}

// addBrokerWorkers registers every long-running part of the broker.
func addBrokerWorkers(sup contract.ISupervisor, log *slog.Logger, config Config, handler *wamp.Handler, monitoring *observability.MonitoringManager) contract.ISupervisor {
	mux := http.NewServeMux()
	mux.Handle("/", handler)

	return sup.Add(
		workers.NewHTTPServerWorker(log, "wamp", config.address(config.Port), mux, handler.Shutdown),
		workers.NewHTTPServerWorker(log, "monitoring", config.address(config.MonitoringPort), monitoring.Handler(), nil),
		workers.NewGrpcServerWorker(log, config.address(config.GrpcPort), healthService),
		monitoring,
		workers.NewHeartbeatWorker(log, config.HeartbeatInterval, monitoring),
	)
}

func loadModerator(log *slog.Logger, dir string, char rune) (*moderation.Moderator, error) {
	if dir == "" {
		log.Info("No censored directory configured, moderation disabled")
		return nil, nil
	}
	data, err := runtime.NewCensoredLoader(os.DirFS(dir)).LoadAll(".")
	if err != nil {
		return nil, fmt.Errorf("loading censored words from %s: %w", dir, err)
	}
	moderator, err := moderation.NewModerator(data.Words, char, log)
	if err != nil {
		return nil, fmt.Errorf("building moderator: %w", err)
	}
	log.Info("Moderation enabled", "words", len(data.Words), "languages", data.Languages)
	return moderator, nil
}
