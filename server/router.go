package server

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RouterOptions toggles the optional parts of the router.
type RouterOptions struct {
	Env            string
	AllowedOrigins []string
	Metrics        bool
	// AccessLog disables request logging when false (tests).
	AccessLog bool
}

func NewRouter(h *Handler, opts RouterOptions) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"Content-Disposition", ReportIDHeader},
		MaxAge:         300,
	}))

	if opts.AccessLog {
		logFormat := httplog.SchemaECS.Concise(opts.Env != "development")
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			ReplaceAttr: logFormat.ReplaceAttr,
		})).With(
			slog.String("app", "rast-attendance"),
			slog.String("env", opts.Env),
		)
		r.Use(httplog.RequestLogger(logger, &httplog.Options{
			Level:  slog.LevelInfo,
			Schema: httplog.SchemaECS,
		}))
	}

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Get("/", h.Form)
	r.Post("/generate", h.Generate)
	r.Get("/roster-template", h.RosterTemplate)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/attendance/preview", h.Preview)
	})

	if opts.Metrics {
		r.Handle("/metrics", promhttp.Handler())
	}

	return r
}
