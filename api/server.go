package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/thegambler1/qmdigital/auth"
	"github.com/thegambler1/qmdigital/config"
	"github.com/thegambler1/qmdigital/database"
	"github.com/thegambler1/qmdigital/services"
)

const (
	loginRatePerMinute = 10
	loginRateBurst     = 5
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(storage database.Storage, c map[string]string) (Server, error) {
	if storage == nil {
		return Server{}, fmt.Errorf("storage is required")
	}

	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	startupTime := time.Now()

	router := newRouter(storage, withConfig(c), withStartupTime(startupTime))

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  config.GetSeconds(c, "READ_TIMEOUT_SECONDS", 30),
		WriteTimeout: config.GetSeconds(c, "WRITE_TIMEOUT_SECONDS", 30),
		IdleTimeout:  config.GetSeconds(c, "IDLE_TIMEOUT_SECONDS", 120),
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
	notifier    contactNotifier
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

// withNotifier replaces the Resend backed contact notifier
func withNotifier(n contactNotifier) func(*router) {
	return func(r *router) {
		r.notifier = n
	}
}

func newRouter(storage database.Storage, opts ...func(*router)) *chi.Mux {
	router := router{startupTime: time.Now()}
	for _, opt := range opts {
		opt(&router)
	}

	authenticator := auth.New(auth.Config{
		PasswordHash: config.GetString(router.config, "ADMIN_PASSWORD_HASH", ""),
		Secret:       config.GetString(router.config, "ADMIN_TOKEN_SECRET", ""),
		TTL:          time.Duration(config.GetInt(router.config, "ADMIN_TOKEN_TTL_MINUTES", 720)) * time.Minute,
	})
	if !authenticator.Enabled() {
		log.Warn().Msg("ADMIN_PASSWORD_HASH or ADMIN_TOKEN_SECRET not set, admin routes are NOT protected")
	}

	if router.notifier == nil {
		router.notifier = newContactNotifier(storage, router.config)
	}

	metrics := newHTTPMetrics()

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)
	chiRouter.Use(metrics.Middleware)
	chiRouter.Use(corsMiddleware(config.GetList(router.config, "ACCEPTED_ORIGINS", defaultCORSOrigins)))

	handlers := initializeHandlers(storage, authenticator, router.notifier, router.startupTime)

	contactLimiter := newRateLimiter(
		config.GetInt(router.config, "CONTACT_RATE_PER_MINUTE", 5),
		config.GetInt(router.config, "CONTACT_RATE_BURST", 3),
	)

	setupOperationalRoutes(chiRouter, handlers, metrics)
	loginLimiter := newRateLimiter(loginRatePerMinute, loginRateBurst)

	setupPublicRoutes(chiRouter, handlers, contactLimiter, loginLimiter)
	setupAdminRoutes(chiRouter, handlers, newAuthMiddleware(authenticator))

	return chiRouter
}

// newContactNotifier builds the email notifier. Recipients come from CONTACT_NOTIFY_EMAIL,
// falling back to the stored contact email.
func newContactNotifier(storage database.Storage, c map[string]string) *services.ContactNotifier {
	logger := log.With().Str("handlerName", "contactNotifier").Logger()

	mailer := services.NewMailer(services.MailerConfig{
		APIKey: config.GetString(c, "RESEND_API_KEY", ""),
		From:   config.GetString(c, "RESEND_FROM_EMAIL", "QM Digital <onboarding@resend.dev>"),
	}, logger)

	notifyEmail := config.GetString(c, "CONTACT_NOTIFY_EMAIL", "")
	recipient := func(ctx context.Context) (string, error) {
		if notifyEmail != "" {
			return notifyEmail, nil
		}
		settings, err := storage.GetSiteSettings(ctx)
		if err != nil || settings == nil {
			return "", err
		}
		return settings.ContactEmail, nil
	}

	return services.NewContactNotifier(mailer, recipient, logger)
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
