package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/GudGuns_Go/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server   *server.Server
	Sessions *Sessions
}

// GracefulShutdown stops the HTTP server first so in-flight requests can
// still reach session storage, then releases the session backend.
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Sessions != nil {
		components.Sessions.Close()
	}

	slog.Info(LogMsgServerStopped)
}
