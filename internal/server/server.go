package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/osse101/ValleyCompanion_Go/docs" // registers the swagger spec
	"github.com/osse101/ValleyCompanion_Go/internal/catalog"
	"github.com/osse101/ValleyCompanion_Go/internal/handler"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
	"github.com/osse101/ValleyCompanion_Go/internal/metrics"
	"github.com/osse101/ValleyCompanion_Go/internal/repository"
)

// Options configures the HTTP server
type Options struct {
	Port           int
	TrustedProxies []string
	// Backend names the catalog store for /version
	Backend string
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance serving the catalog API
func NewServer(opts Options, catalogService catalog.Service, store repository.Pinger) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, catalogService, store),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree and middleware stack
func NewRouter(opts Options, catalogService catalog.Service, store repository.Pinger) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewRateDetector(RateLimitPerWindow, RateLimitWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.Backend))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/crops", func(r chi.Router) {
			r.Get("/", handler.HandleListCrops(catalogService))
			r.Get("/{id}", handler.HandleGetCrop(catalogService))
		})
		r.Get("/fish", handler.HandleListFish(catalogService))
		r.Get("/npcs", handler.HandleListNPCs(catalogService))
		r.Get("/recipes", handler.HandleListRecipes(catalogService))
		r.Get("/mining", handler.HandleListMining(catalogService))
		r.Get("/bundles", handler.HandleListBundles(catalogService))
		r.Get("/search", handler.HandleSearch(catalogService))
		r.Post("/planner/summary", handler.HandlePlannerSummary(catalogService))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
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

func isQuietPath(path string) bool {
	return slices.ContainsFunc(QuietPaths, func(p string) bool { return strings.HasPrefix(path, p) })
}

func isSensitiveHeader(name string) bool {
	return strings.EqualFold(name, HeaderAPIKey) ||
		strings.EqualFold(name, HeaderAuthorization) ||
		strings.EqualFold(name, HeaderCookie)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"query", r.URL.RawQuery,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if isSensitiveHeader(k) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
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
