package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/umerfilms/website/handler"
	"github.com/umerfilms/website/internal/contact"
	"github.com/umerfilms/website/internal/contactform"
	"github.com/umerfilms/website/internal/metrics"
	"github.com/umerfilms/website/pkg/clientip"
	"github.com/umerfilms/website/pkg/config"
	"github.com/umerfilms/website/pkg/email"
	"github.com/umerfilms/website/pkg/environment"
	"github.com/umerfilms/website/pkg/httpserver"
	"github.com/umerfilms/website/pkg/logger"
	"github.com/umerfilms/website/pkg/requestid"
)

func main() {
	var (
		appCfg     appConfig
		httpCfg    httpserver.Config
		emailCfg   email.Config
		contactCfg contact.Config
	)
	config.MustLoad(&appCfg)
	config.MustLoad(&httpCfg)
	config.MustLoad(&emailCfg)
	config.MustLoad(&contactCfg)

	env := appCfg.Env.Normalize()
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	sender := newSender(appCfg, emailCfg, env, log)
	svc := contact.NewService(sender, contactCfg,
		contact.WithLogger(log),
		contact.WithMetrics(metrics.Contact{}),
	)

	router := newRouter(appCfg, env, log, svc)

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.Info("contact service ready",
				slog.String("env", string(env)),
				slog.String("public_url", appCfg.PublicBaseURL),
			)
		}),
	)
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

// newSender writes mail to disk outside production and uses Postmark in
// production, behind the circuit breaker unless it is disabled.
func newSender(appCfg appConfig, cfg email.Config, env environment.Environment, log *slog.Logger) email.Sender {
	if !env.IsProduction() {
		log.Info("using development email sender", slog.String("dir", appCfg.EmailDevOutputDir))
		return email.NewDevSender(appCfg.EmailDevOutputDir)
	}

	if cfg.PostmarkServerToken == "" {
		log.Warn("POSTMARK_SERVER_TOKEN is not set; contact emails will fail to send")
	}
	var sender email.Sender = email.NewPostmarkClient(cfg)
	if appCfg.EmailBreakerEnabled {
		metrics.SetEmailBreakerOpen(false)
		sender = email.NewBreakerSender(sender, cfg,
			email.WithBreakerLogger(log),
			email.WithBreakerStateListener(func(state string) {
				metrics.SetEmailBreakerOpen(state == "open")
			}),
		)
	}
	return sender
}

func newRouter(appCfg appConfig, env environment.Environment, log *slog.Logger, svc *contact.Service) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware,
		environment.Middleware(env),
		metrics.Middleware,
	)

	limitContact := httprate.Limit(appCfg.ContactRateLimit, appCfg.ContactRateWindow,
		httprate.WithKeyFuncs(clientip.KeyFunc),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.RecordContactOutcome("rate_limited")
			_ = handler.JSON(
				contact.Response{Success: false, Message: "Too many requests. Please try again later."},
				handler.WithJSONStatus(http.StatusTooManyRequests),
			).Render(w, r)
		}),
	)

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: appCfg.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", requestid.Header},
			ExposedHeaders: []string{requestid.Header},
			MaxAge:         300,
		}))
		r.With(limitContact).Post("/contact", contact.NewHandler(svc, log).ServeHTTP)
	})

	page := contactform.NewHandler(contactform.ServiceSubmitter(svc), contactform.WithLogger(log))
	r.Get("/contact", page.Page())
	r.With(limitContact).Post("/contact", page.Submit())

	return r
}
