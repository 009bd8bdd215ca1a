package sqlite

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/oklog/ulid/v2"
	"github.com/samber/oops"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
)

// userRow is the persisted shape of a user. Seq keeps insertion order.
type userRow struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"size:26;uniqueIndex;not null"`
	Username  string    `gorm:"uniqueIndex;not null"`
	FirstName string    `gorm:"not null"`
	LastName  string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

// Option configures Open.
type Option func(*config)

type config struct {
	logWriter io.Writer
	logLevel  gormlogger.LogLevel
}

// WithLogWriter sends gorm diagnostics to w at warn level.
func WithLogWriter(w io.Writer) Option {
	return func(c *config) {
		c.logWriter = w
		c.logLevel = gormlogger.Warn
	}
}

// Store implements store.UserStore on a gorm handle.
type Store struct {
	db *gorm.DB
}

var _ store.UserStore = (*Store)(nil)

// Open creates the parent directory of path, opens the database and
// migrates the users table.
func Open(path string, opts ...Option) (*Store, error) {
	cfg := config{logWriter: io.Discard, logLevel: gormlogger.Silent}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, oops.Code(store.CodeBackend).With("path", path).Wrapf(err, "create db directory")
	}

	dsn := fmt.Sprintf("%s?_busy_timeout=5000", path)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger: gormlogger.New(
			log.New(cfg.logWriter, "\r\n", log.LstdFlags),
			gormlogger.Config{
				SlowThreshold:             time.Second,
				LogLevel:                  cfg.logLevel,
				IgnoreRecordNotFoundError: true,
			},
		),
	})
	if err != nil {
		return nil, oops.Code(store.CodeBackend).With("path", path).Wrapf(err, "open sqlite")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, oops.Code(store.CodeBackend).With("path", path).Wrapf(err, "open sqlite")
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)
	return New(db)
}

// New wraps an existing gorm handle and migrates the users table.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&userRow{}); err != nil {
		return nil, oops.Code(store.CodeBackend).Wrapf(err, "migrate users")
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (s *Store) Find(ctx context.Context, username string) (model.UserRecord, bool, error) {
	var row userRow
	err := s.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.UserRecord{}, false, nil
	}
	if err != nil {
		return model.UserRecord{}, false, oops.Code(store.CodeBackend).With("username", username).Wrapf(err, "find user")
	}
	user, err := row.record()
	if err != nil {
		return model.UserRecord{}, false, err
	}
	return user, true, nil
}

func (s *Store) Insert(ctx context.Context, user model.UserRecord) error {
	if err := store.CheckInsertable(user); err != nil {
		return err
	}
	row := rowFrom(user)
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&userRow{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return store.ConflictError(user.Username)
		}
		return tx.Create(&row).Error
	})
	switch {
	case err == nil:
		return nil
	case store.IsConflict(err), isUniqueViolation(err):
		return store.ConflictError(user.Username)
	default:
		return oops.Code(store.CodeBackend).With("username", user.Username).Wrapf(err, "insert user")
	}
}

func (s *Store) List(ctx context.Context) ([]model.UserRecord, error) {
	var rows []userRow
	if err := s.db.WithContext(ctx).Order("seq").Find(&rows).Error; err != nil {
		return nil, oops.Code(store.CodeBackend).Wrapf(err, "list users")
	}
	out := make([]model.UserRecord, 0, len(rows))
	for _, row := range rows {
		user, err := row.record()
		if err != nil {
			return nil, err
		}
		out = append(out, user)
	}
	return out, nil
}

func rowFrom(user model.UserRecord) userRow {
	return userRow{
		ID:        user.ID.String(),
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.UTC(),
	}
}

func (r userRow) record() (model.UserRecord, error) {
	id, err := ulid.Parse(r.ID)
	if err != nil {
		return model.UserRecord{}, oops.Code(store.CodeBackend).With("id", r.ID).Wrapf(err, "decode user id")
	}
	return model.UserRecord{
		ID: id,
		Profile: model.Profile{
			FirstName: r.FirstName,
			LastName:  r.LastName,
			Username:  r.Username,
			Email:     r.Email,
		},
		CreatedAt: r.CreatedAt,
	}, nil
}

func isUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(err.Error(), "UNIQUE constraint failed")
}
