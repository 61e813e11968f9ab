// cmd/userkit-service/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"userkit/internal/userapi"
	"userkit/pkg/config"
	"userkit/pkg/env"
	"userkit/pkg/logger"
	"userkit/pkg/middleware"
	"userkit/pkg/openapi"
)

// Set with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// 1. Load configuration & initialize structured logger.
	cfg := config.Load()
	appLog := logger.New(cfg.Env)

	// 2. Resolve the runtime environment once; handlers share the snapshot.
	runtimeEnv, err := config.Environment(cfg)
	if err != nil {
		appLog.Fatalw("environment", "err", err)
	}
	leveled := logger.NewLeveled(runtimeEnv, logger.Console())
	leveled.Info("environment resolved",
		"runtime", runtimeEnv.Runtime(),
		"frozen", cfg.FreezeEnv,
		env.KeyPublicAPIURL, runtimeEnv.ServerValue(env.KeyPublicAPIURL),
		env.KeyBundlerAPIURL, runtimeEnv.BundlerValue(env.KeyBundlerAPIURL),
	)

	// 3. Build HTTP router and register middlewares.
	router := chi.NewRouter()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recover(appLog))
	// Optional diagnostic middleware for double WriteHeader.
	router.Use(middleware.DebugWriteHeader(cfg.DebugDoubleWrite, appLog))
	// Permissive CORS: the endpoints are read-only and consumed by browsers.
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "86400")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	})
	router.Use(middleware.Tracing(cfg.ServiceName, appLog))

	// 4. Basic operational endpoints.
	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("ok")) })
	router.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { w.Write([]byte("pong")) })
	router.Get("/metrics", promhttp.Handler().ServeHTTP)

	// 5. Domain routes.
	docs := openapi.NewRegistry()
	userapi.RegisterRoutes(router, runtimeEnv, appLog, userapi.NewMetrics(prometheus.DefaultRegisterer), docs)
	router.Get("/openapi.json", docs.ServeHandler(cfg.ServiceName, version))

	// 6. Configure and start HTTP server asynchronously.
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: router}
	go func() {
		appLog.Infow("userkit-service listening", "addr", cfg.HTTPAddr, "version", version)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatalw("ListenAndServe", "err", err)
		}
	}()

	// 7. Wait for termination signal (SIGINT/SIGTERM) to begin graceful shutdown.
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	<-stopCh

	// 8. Graceful shutdown with timeout.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpServer.Shutdown(ctx)
	_ = appLog.Sync()
	fmt.Println("userkit-service stopped")
}
