package auth

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
	"github.com/goliatone/go-authform/pkg/validation"
)

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the CreatedAt source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// Service registers and finds users.
type Service struct {
	users  store.UserStore
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds a service over users.
func NewService(users store.UserStore, opts ...Option) *Service {
	s := &Service{
		users:  users,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:    time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Register sanitizes and validates profile, assigns an ID and inserts it.
// Validation failures unwrap to *validation.FieldError; a taken username
// satisfies errors.Is(err, store.ErrConflict).
func (s *Service) Register(ctx context.Context, profile model.Profile) (model.UserRecord, error) {
	if s.users == nil {
		return model.UserRecord{}, ErrNilStore
	}
	profile = SanitizeProfile(profile)
	if issues := validation.ValidateProfile(profile); len(issues) > 0 {
		return model.UserRecord{}, oops.
			Code(CodeInvalidProfile).
			With("field", issues[0].Field.String()).
			Wrap(validation.IssuesError(issues))
	}

	user := model.UserRecord{
		ID:        ulid.Make(),
		Profile:   profile,
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Insert(ctx, user); err != nil {
		if store.IsConflict(err) {
			s.logger.Info("registration conflict", "username", profile.Username)
			return model.UserRecord{}, err
		}
		return model.UserRecord{}, oops.Code(CodeInsertFailed).With("username", profile.Username).Wrap(err)
	}

	s.logger.Info("user registered", "username", user.Username, "id", user.ID.String())
	return user, nil
}

// Login returns the user registered under username, matched exactly.
func (s *Service) Login(ctx context.Context, username string) (model.UserRecord, error) {
	if s.users == nil {
		return model.UserRecord{}, ErrNilStore
	}
	user, ok, err := s.users.Find(ctx, username)
	if err != nil {
		return model.UserRecord{}, oops.Code(CodeLookupFailed).With("username", username).Wrap(err)
	}
	if !ok {
		s.logger.Info("sign-in for unknown user", "username", username)
		return model.UserRecord{}, oops.Code(CodeNotFound).With("username", username).Wrap(ErrUserNotFound)
	}
	s.logger.Info("user signed in", "username", username)
	return user, nil
}

// Users lists registered users in insertion order.
func (s *Service) Users(ctx context.Context) ([]model.UserRecord, error) {
	if s.users == nil {
		return nil, ErrNilStore
	}
	return s.users.List(ctx)
}
