package builder

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App owns the running service: the HTTP server and the database pool it
// closes behind it on shutdown.
type App struct {
	server *http.Server
	db     *pgxpool.Pool
	logger *zap.Logger
}

// Run serves HTTP until the process is interrupted or the listener fails,
// then drains in-flight requests before returning.
func (a *App) Run() error {
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server listening", zap.String("addr", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serveErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serveErr:
		a.logger.Error("HTTP server failed", zap.Error(err))
		return err
	case sig := <-stop:
		a.logger.Info("Shutdown signal received", zap.String("signal", sig.String()))
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a.logger.Info("Draining in-flight requests")
	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error("HTTP server shutdown failed", zap.Error(err))
		return err
	}

	if a.db != nil {
		a.logger.Info("Closing database pool")
		a.db.Close()
	}

	a.logger.Info("Server stopped")
	return nil
}
