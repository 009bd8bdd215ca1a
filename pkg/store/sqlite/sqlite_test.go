package sqlite_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-authform/pkg/store"
	"github.com/goliatone/go-authform/pkg/store/sqlite"
	"github.com/goliatone/go-authform/pkg/testsupport"
)

func openTestStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()
	s, err := sqlite.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestStoreContract(t *testing.T) {
	testsupport.RunUserStoreContract(t, func(t *testing.T) store.UserStore {
		return openTestStore(t, filepath.Join(t.TempDir(), "users.db"))
	})
}

func TestOpenCreatesNestedDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "users.db")
	s := openTestStore(t, path)

	users, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t, filepath.Join(t.TempDir(), "users.db"))

	ada := testsupport.Record("ada")
	require.NoError(t, s.Insert(ctx, ada))
	require.NoError(t, s.Insert(ctx, testsupport.Record("grace")))

	got, ok, err := s.Find(ctx, "ada")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, ada.ID, got.ID)
	assert.Equal(t, ada.Profile, got.Profile)
	assert.True(t, ada.CreatedAt.Equal(got.CreatedAt), "created at %v != %v", ada.CreatedAt, got.CreatedAt)

	_, ok, err = s.Find(ctx, "Ada")
	require.NoError(t, err)
	assert.False(t, ok)

	users, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "ada", users[0].Username)
	assert.Equal(t, "grace", users[1].Username)
}

func TestStorePersistsAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.db")

	first, err := sqlite.Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Insert(ctx, testsupport.Record("ada")))
	require.NoError(t, first.Close())

	second := openTestStore(t, path)
	_, ok, err := second.Find(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestWithLogWriterIsQuietOnSuccess(t *testing.T) {
	var buf bytes.Buffer
	s, err := sqlite.Open(filepath.Join(t.TempDir(), "users.db"), sqlite.WithLogWriter(&buf))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Insert(context.Background(), testsupport.Record("ada")))
	assert.Empty(t, buf.String())
}
