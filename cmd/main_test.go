package main

import (
	"chat-broker/contract"
	"chat-broker/mocks"
	"chat-broker/observability"
	"chat-broker/runtime"
	"chat-broker/transport/wamp"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAddBrokerWorkers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	monitoring := observability.NewMonitoringManager(log)
	dispatcher := runtime.NewDispatcher(log, nil, monitoring)
	handler := wamp.NewHandler(log, dispatcher, wamp.Config{ServerIdent: "test"})
	config := Config{Host: "127.0.0.1", Port: 8080, GrpcPort: 9090, MonitoringPort: 8081, HeartbeatInterval: time.Second}

	// Given a supervisor recording what it is asked to run
	sup := mocks.NewMockISupervisor(ctrl)
	var names []string
	sup.EXPECT().
		Add(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(workers ...contract.Worker) contract.ISupervisor {
			for _, w := range workers {
				names = append(names, contract.GetWorkerName(w))
			}
			return sup
		}).
		Times(1)

	// When the broker workers are registered
	got := addBrokerWorkers(sup, log, config, handler, monitoring)

	// Then every server and collector is supervised
	req.Equal(sup, got)
	req.Equal([]string{
		"HTTPServerWorker",
		"HTTPServerWorker",
		"GrpcServerWorker",
		"MonitoringManager",
		"HeartbeatWorker",
	}, names)
}

func TestConfig_CharacterRune(t *testing.T) {
	req := require.New(t)

	r, err := Config{CharReplacement: "#"}.CharacterRune()
	req.NoError(err)
	req.Equal('#', r)

	_, err = Config{CharReplacement: "**"}.CharacterRune()
	req.Error(err)
}
