package main

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mcdev12/tipster/go/internal/httpapi"
	"github.com/mcdev12/tipster/go/internal/scoring"
)

func setupServer(cfg *Config, services *Services, pool *pgxpool.Pool) *http.Server {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := httpapi.NewMetrics(reg)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(httpapi.RequestLogger(log.Logger))
	r.Use(metrics.Middleware)

	// Register REST services
	r.Route("/api", func(r chi.Router) {
		registerServices(r, services)
	})

	// Register the connect scoring service
	scoringPath, scoringHandler := scoring.NewScoringServiceHandler(services.Scoring)
	r.Mount(scoringPath, scoringHandler)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	setupHealthCheck(r, pool)

	c := cors.New(cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
		},
		AllowedOrigins:   cfg.Server.CORSOrigins,
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	// HTTP/2 without TLS for connect clients
	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      h2c.NewHandler(c.Handler(r), &http2.Server{}),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
}

func registerServices(r chi.Router, services *Services) {
	services.Users.RegisterRoutes(r, services.Auth.Authenticate, services.RateLimiter.Middleware)

	r.Group(func(r chi.Router) {
		r.Use(services.Auth.Authenticate)
		services.Seasons.RegisterRoutes(r)
		services.Leagues.RegisterRoutes(r)
		services.Rounds.RegisterRoutes(r)
		services.Matches.RegisterRoutes(r)
		services.Teams.RegisterRoutes(r)
		services.Tips.RegisterRoutes(r)
		services.Notifications.RegisterRoutes(r)
		services.Achievements.RegisterRoutes(r)
	})
}

func setupHealthCheck(r chi.Router, pool *pgxpool.Pool) {
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := pool.Ping(r.Context()); err != nil {
			log.Error().Err(err).Msg("health check database ping failed")
			httpapi.WriteJSON(w, http.StatusServiceUnavailable, httpapi.Response{Success: false, Message: "database unavailable"})
			return
		}
		httpapi.Message(w, "OK")
	})
}
