package filestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
)

// ErrCorrupt is returned when the backing file cannot be decoded.
var ErrCorrupt = errors.New("filestore: invalid JSON or YAML document")

type document struct {
	Users []model.UserRecord `json:"users" yaml:"users"`
}

// Store implements store.UserStore on a document file.
type Store struct {
	mu    sync.Mutex
	path  string
	yaml  bool
	users []model.UserRecord
}

var _ store.UserStore = (*Store)(nil)

// Open loads path, treating a missing file as an empty store. The file is
// created on the first insert.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("filestore: empty path")
	}
	ext := strings.ToLower(filepath.Ext(path))
	s := &Store{path: path, yaml: ext == ".yaml" || ext == ".yml"}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("filestore: read %s: %w", path, err)
	}

	doc, err := parseDocument(data, path)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(doc.Users))
	for _, user := range doc.Users {
		if err := store.CheckInsertable(user); err != nil {
			return nil, fmt.Errorf("filestore: %s: %w", path, err)
		}
		if _, dup := seen[user.Username]; dup {
			return nil, fmt.Errorf("filestore: %s: duplicate username %q: %w", path, user.Username, ErrCorrupt)
		}
		seen[user.Username] = struct{}{}
	}
	s.users = doc.Users
	return s, nil
}

// Path returns the backing file.
func (s *Store) Path() string {
	return s.path
}

func (s *Store) Find(ctx context.Context, username string) (model.UserRecord, bool, error) {
	if err := ctx.Err(); err != nil {
		return model.UserRecord{}, false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Username == username {
			return user, true, nil
		}
	}
	return model.UserRecord{}, false, nil
}

func (s *Store) Insert(ctx context.Context, user model.UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := store.CheckInsertable(user); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Username == user.Username {
			return store.ConflictError(user.Username)
		}
	}

	next := append(append([]model.UserRecord(nil), s.users...), user)
	if err := s.writeLocked(next); err != nil {
		return err
	}
	s.users = next
	return nil
}

func (s *Store) List(ctx context.Context) ([]model.UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.UserRecord{}, s.users...), nil
}

func (s *Store) writeLocked(users []model.UserRecord) error {
	doc := document{Users: users}
	var (
		data []byte
		err  error
	)
	if s.yaml {
		data, err = yaml.Marshal(doc)
	} else {
		data, err = json.MarshalIndent(doc, "", "  ")
		data = append(data, '\n')
	}
	if err != nil {
		return fmt.Errorf("filestore: encode: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("filestore: create directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("filestore: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("filestore: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("filestore: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("filestore: replace %s: %w", s.path, err)
	}
	return nil
}

func parseDocument(data []byte, source string) (document, error) {
	var doc document
	if len(strings.TrimSpace(string(data))) == 0 {
		return document{}, nil
	}
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	doc = document{}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return document{}, fmt.Errorf("filestore: parse %s: %w", source, ErrCorrupt)
}
