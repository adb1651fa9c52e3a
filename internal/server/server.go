package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/voxnote/internal/auth"
	"github.com/nfrund/voxnote/internal/backend"
	"github.com/nfrund/voxnote/internal/config"
	"github.com/nfrund/voxnote/internal/content"
	"github.com/nfrund/voxnote/internal/domain"
	"github.com/nfrund/voxnote/internal/handlers"
	appmiddleware "github.com/nfrund/voxnote/internal/middleware"
	"github.com/nfrund/voxnote/internal/pubsub"
	"github.com/nfrund/voxnote/internal/rendering"
	"github.com/nfrund/voxnote/web"
	"github.com/spf13/afero"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E       *echo.Echo
	Cfg     *config.Config
	Flow    *auth.GoogleFlow
	Handoff *auth.Handoff
	Bus     *pubsub.WatermillBridge

	logger         *slog.Logger
	contentWatcher *content.Watcher
	landingHandler *handlers.LandingHandler
	authHandler    *handlers.AuthHandler
}

type options struct {
	exchanger domain.CodeExchanger
	endpoint  oauth2.Endpoint
	fs        afero.Fs
	logger    *slog.Logger
}

// Option customises New, mostly for tests.
type Option func(*options)

// WithExchanger replaces the backend HTTP client.
func WithExchanger(ex domain.CodeExchanger) Option {
	return func(o *options) { o.exchanger = ex }
}

// WithOAuthEndpoint points the login flow at another provider endpoint.
func WithOAuthEndpoint(ep oauth2.Endpoint) Option {
	return func(o *options) { o.endpoint = ep }
}

// WithContentFS sets the filesystem CONTENT_FILE is read from.
func WithContentFS(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the base logger for requests and the login audit trail.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New wires the application. Configuration problems are logged, not fatal:
// the landing page is served even when sign-in cannot work. Only an unreadable
// content override stops construction.
func New(cfg *config.Config, opts ...Option) (*Server, error) {
	o := options{
		endpoint: google.Endpoint,
		fs:       afero.NewOsFs(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	logger := o.logger

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration, Google sign-in will not work", "error", err)
	}
	if cfg.UsesDefaultSessionSecret() {
		logger.Warn("SESSION_SECRET is not set, using the development default")
	}

	landing, err := content.Load(o.fs, cfg.ContentFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load landing content: %w", err)
	}
	source := content.Fixed(landing)
	var watcher *content.Watcher
	if cfg.ContentFile != "" {
		watcher = content.NewWatcher(o.fs, cfg.ContentFile, landing)
		source = watcher
	}

	exchanger := o.exchanger
	if exchanger == nil {
		exchanger = backend.NewClient(cfg.BackendExchangeURL, backend.WithTimeout(cfg.BackendTimeout))
	}

	bus := pubsub.NewWatermillBridge()
	handoff := auth.NewHandoff(exchanger, auth.WithPublisher(bus))
	flow := auth.NewGoogleFlowWithEndpoint(cfg.GoogleClientID, cfg.GoogleRedirectURL, cfg.LoginStateTTL, o.endpoint)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.Use(middleware.RequestID())
	e.Use(appmiddleware.Logger(logger))
	e.Use(middleware.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(cfg.LoginStateTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:              e,
		Cfg:            cfg,
		Flow:           flow,
		Handoff:        handoff,
		Bus:            bus,
		logger:         logger,
		contentWatcher: watcher,
		landingHandler: handlers.NewLandingHandler(source, rendering.NewUniversalRenderer()),
		authHandler:    handlers.NewAuthHandler(flow, flow, handoff),
	}
	s.RegisterRoutes()
	return s, nil
}
