package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/GudGuns_Go/internal/bootstrap"
	"github.com/osse101/GudGuns_Go/internal/bungie"
	"github.com/osse101/GudGuns_Go/internal/config"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/handler"
	"github.com/osse101/GudGuns_Go/internal/manifest"
	"github.com/osse101/GudGuns_Go/internal/metrics"
	"github.com/osse101/GudGuns_Go/internal/server"
)

const shutdownTimeout = 10 * time.Second

// @title GudGuns API
// @version 1.0
// @description Bungie.net login and Destiny 2 vault weapon listing.
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	if logFile := initLogger(cfg); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defs, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}
	metrics.ManifestDefinitions.Set(float64(defs.Len()))

	sessions, err := bootstrap.SetupSessions(ctx, cfg)
	if err != nil {
		return err
	}

	tmpl, err := handler.ParseTemplates()
	if err != nil {
		sessions.Close()
		return err
	}

	platform := bungie.NewClient(bungie.Config{
		BaseURL:      cfg.BungieBaseURL,
		APIKey:       cfg.APIKey,
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURI:  cfg.RedirectURI,
		Timeout:      cfg.UpstreamTimeout,
	})

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		TrustedProxies: cfg.TrustedProxies,
		DebugRoutes:    cfg.DebugRoutes || cfg.IsDevelopment(),
		ServiceName:    cfg.ServiceName,
		Version:        cfg.Version,
	}, server.Deps{
		Platform:    platform,
		Sessions:    sessions.Manager,
		Definitions: defs,
		Templates:   tmpl,
		Fallback: domain.Membership{
			MembershipType: cfg.DefaultMembershipType,
			MembershipID:   cfg.DefaultMembershipID,
		},
		DBPool: sessions.ReadinessPool(),
	})

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case serveErr = <-errCh:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:   srv,
		Sessions: sessions,
	})
	return serveErr
}
