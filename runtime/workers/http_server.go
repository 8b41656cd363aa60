package workers

import (
	"chat-broker/contract"
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 10 * time.Second

var _ contract.Worker = (*HTTPServerWorker)(nil)

// HTTPServerWorker serves a handler until the context is canceled, then shuts
// down gracefully and runs the optional onShutdown hook.
type HTTPServerWorker struct {
	log        *slog.Logger
	name       string
	address    string
	handler    http.Handler
	onShutdown func()
	listen     func(network, address string) (net.Listener, error)
}

func NewHTTPServerWorker(log *slog.Logger, name, address string, handler http.Handler, onShutdown func()) *HTTPServerWorker {
	return &HTTPServerWorker{
		log:        log.With("server", name),
		name:       name,
		address:    address,
		handler:    handler,
		onShutdown: onShutdown,
		listen:     net.Listen,
	}
}

func (w *HTTPServerWorker) Run(ctx context.Context) error {
	listener, err := w.listen("tcp", w.address)
	if err != nil {
		return err
	}
	return w.Serve(ctx, listener)
}

// Serve is Run on an existing listener.
func (w *HTTPServerWorker) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler:     w.handler,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting HTTP server", "address", listener.Addr().String())
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	w.log.Info("Shutting down HTTP server")
	if w.onShutdown != nil {
		w.onShutdown()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		w.log.Warn("HTTP server shutdown incomplete", "error", err)
	}
	return nil
}
