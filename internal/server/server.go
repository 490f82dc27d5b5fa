package server

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/GudGuns_Go/docs"
	"github.com/osse101/GudGuns_Go/internal/database"
	"github.com/osse101/GudGuns_Go/internal/domain"
	"github.com/osse101/GudGuns_Go/internal/handler"
	"github.com/osse101/GudGuns_Go/internal/logger"
	"github.com/osse101/GudGuns_Go/internal/metrics"
	"github.com/osse101/GudGuns_Go/internal/weapons"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	TrustedProxies []string
	DebugRoutes    bool
	ServiceName    string
	Version        string
}

// Deps are the collaborators the routes are built from
type Deps struct {
	Platform    handler.Platform
	Sessions    handler.Sessions
	Definitions weapons.Definitions
	Templates   *template.Template
	// Fallback membership for sessions whose membership could not be resolved
	Fallback domain.Membership
	// DBPool is nil when sessions are held in memory
	DBPool database.Pool
}

type Server struct {
	httpServer *http.Server
	router     chi.Router
}

// NewServer creates a new Server instance
func NewServer(cfg Config, deps Deps) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(maxRequestBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))
	r.Get("/version", handler.HandleVersion(cfg.ServiceName, cfg.Version))
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", handler.HandleHome(deps.Sessions))
	r.Get("/login", handler.HandleLogin(deps.Platform, deps.Sessions))
	r.With(FailedLoginMiddleware(cfg.TrustedProxies, detector)).
		Get("/oauth_callback", handler.HandleCallback(deps.Platform, deps.Sessions, deps.Fallback))
	r.Get("/logout", handler.HandleLogout(deps.Sessions))

	authed := func(h handler.CredentialedHandler) http.HandlerFunc {
		return handler.WithCredentials(deps.Sessions, h)
	}

	inventory := handler.InventoryDeps{
		Platform:    deps.Platform,
		Definitions: deps.Definitions,
		Fallback:    deps.Fallback,
	}

	r.Get("/memberships", authed(handler.HandleMemberships(deps.Platform)))
	r.Route("/inventory", func(r chi.Router) {
		r.Get("/", authed(handler.HandleInventory(inventory)))
		r.Get("/raw", authed(handler.HandleInventoryRaw(inventory)))
		r.Get("/view", authed(handler.HandleInventoryView(inventory, deps.Templates)))
	})

	if cfg.DebugRoutes {
		slog.Default().Warn(LogMsgDebugRoutes)
		r.Get("/debug/token", authed(handler.HandleDebugToken()))
	}

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
		router: r,
	}
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler {
	return s.router
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(r.URL.Path, p) }) {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// redactHeaders copies h with credentials masked. Cookies carry the session.
func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) ||
			strings.EqualFold(k, HeaderAuthorization) ||
			strings.EqualFold(k, HeaderCookie) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
