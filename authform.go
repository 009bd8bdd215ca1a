// Package authform wires the validation, form, auth and store packages into
// ready-to-use sign-up and sign-in controllers.
package authform

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/goliatone/go-authform/pkg/auth"
	"github.com/goliatone/go-authform/pkg/config"
	"github.com/goliatone/go-authform/pkg/form"
	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
	"github.com/goliatone/go-authform/pkg/store/filestore"
	"github.com/goliatone/go-authform/pkg/store/sqlite"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Build metadata, set with -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

// FormSnapshot aliases model.FormSnapshot for callers that only need the
// top-level package.
type FormSnapshot = model.FormSnapshot

// RuleSet aliases validation.RuleSet.
type RuleSet = validation.RuleSet

// Controller aliases form.Controller.
type Controller = form.Controller

// App wires a store, the auth service and form metrics from a Config.
type App struct {
	rules    validation.RuleSet
	users    store.UserStore
	service  *auth.Service
	metrics  *form.Metrics
	registry *prometheus.Registry
	logger   *slog.Logger
	closer   func() error
}

// Option configures New.
type Option func(*App)

// WithLogger sets the logger shared by the service and controllers.
func WithLogger(logger *slog.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithStore replaces the store selected by the configuration.
func WithStore(users store.UserStore) Option {
	return func(a *App) {
		a.users = users
	}
}

// New builds an App. A nil cfg means config.Default().
func New(cfg *config.Config, opts ...Option) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	a := &App{
		rules:    cfg.RuleSet(),
		registry: prometheus.NewRegistry(),
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		closer:   func() error { return nil },
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}

	if a.users == nil {
		users, closer, err := OpenStore(cfg.Store, a.logger)
		if err != nil {
			return nil, err
		}
		a.users, a.closer = users, closer
	}

	metrics, err := form.NewMetrics(a.registry)
	if err != nil {
		_ = a.closer()
		return nil, err
	}
	a.metrics = metrics
	a.service = auth.NewService(a.users, auth.WithLogger(a.logger))
	return a, nil
}

// OpenStore opens the backend named by cfg.Driver. The returned closer is
// never nil.
func OpenStore(cfg config.StoreConfig, logger *slog.Logger) (store.UserStore, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case "", config.DriverMemory:
		return store.NewMemory(), noop, nil
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.Path, sqlite.WithLogWriter(slogWriter{logger}))
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case config.DriverFile:
		s, err := filestore.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil
	default:
		return nil, nil, fmt.Errorf("authform: unknown store driver %q", cfg.Driver)
	}
}

// Rules returns the effective rule set.
func (a *App) Rules() validation.RuleSet { return a.rules }

// Service returns the auth service.
func (a *App) Service() *auth.Service { return a.service }

// Store returns the user store.
func (a *App) Store() store.UserStore { return a.users }

// Logger returns the shared logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Registry returns the prometheus registry holding the form counters.
func (a *App) Registry() *prometheus.Registry { return a.registry }

// SignUpForm returns a sign-up controller that registers users on submit.
func (a *App) SignUpForm(opts ...form.Option) *form.Controller {
	base := []form.Option{
		form.WithLogger(a.logger),
		form.WithMetrics(a.metrics),
		form.WithSubmitter(auth.SignUpSubmitter(a.service)),
	}
	return form.NewSignUp(a.rules, append(base, opts...)...)
}

// SignInForm returns a sign-in controller that checks the username exists.
func (a *App) SignInForm(opts ...form.Option) *form.Controller {
	base := []form.Option{
		form.WithLogger(a.logger),
		form.WithMetrics(a.metrics),
		form.WithSubmitter(auth.SignInSubmitter(a.service)),
	}
	return form.NewSignIn(append(base, opts...)...)
}

// SubmitCounts returns submit totals keyed "form/outcome".
func (a *App) SubmitCounts() (map[string]float64, error) {
	families, err := a.registry.Gather()
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "authform_submit_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var formName, outcome string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "form":
					formName = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			out[formName+"/"+outcome] = m.GetCounter().GetValue()
		}
	}
	return out, nil
}

// Close releases the store.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}

// slogWriter forwards gorm's line logger to slog at warn level.
type slogWriter struct {
	logger *slog.Logger
}

func (w slogWriter) Write(p []byte) (int, error) {
	if w.logger == nil {
		return len(p), nil
	}
	if msg := strings.TrimSpace(string(p)); msg != "" {
		w.logger.Warn("sqlite", "detail", msg)
	}
	return len(p), nil
}
