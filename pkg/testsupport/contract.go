package testsupport

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-authform/pkg/model"
	"github.com/goliatone/go-authform/pkg/store"
)

// RunUserStoreContract checks the behaviour every store.UserStore shares.
// newStore must return an empty store.
func RunUserStoreContract(t *testing.T, newStore func(t *testing.T) store.UserStore) {
	t.Helper()

	t.Run("find missing", func(t *testing.T) {
		s := newStore(t)
		_, ok, err := s.Find(context.Background(), "nobody")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("insert then find exact", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		want := Record("ada")
		require.NoError(t, s.Insert(ctx, want))

		got, ok, err := s.Find(ctx, "ada")
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, want.ID, got.ID)
		assert.Equal(t, want.Profile, got.Profile)
		assert.True(t, want.CreatedAt.Equal(got.CreatedAt))

		for _, other := range []string{"Ada", "ada ", " ada"} {
			_, ok, err := s.Find(ctx, other)
			require.NoError(t, err)
			assert.False(t, ok, "lookup of %q must miss", other)
		}
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, Record("ada")))

		err := s.Insert(ctx, Record("ada"))
		require.Error(t, err)
		assert.ErrorIs(t, err, store.ErrConflict)
		assert.True(t, store.IsConflict(err))

		require.NoError(t, s.Insert(ctx, Record("Ada")), "usernames are case-sensitive")
	})

	t.Run("invalid records", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		assert.ErrorIs(t, s.Insert(ctx, model.UserRecord{ID: ulid.Make()}), store.ErrInvalidUser)
		noID := Record("ada")
		noID.ID = ulid.ULID{}
		assert.ErrorIs(t, s.Insert(ctx, noID), store.ErrInvalidUser)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		names := []string{"zed", "ada", "mia"}
		for _, name := range names {
			require.NoError(t, s.Insert(ctx, Record(name)))
		}
		users, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, users, len(names))
		for i, name := range names {
			assert.Equal(t, name, users[i].Username)
		}
	})

	t.Run("concurrent inserts of one username", func(t *testing.T) {
		ctx := context.Background()
		s := newStore(t)
		const workers = 8
		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			succeeded int
			conflicts int
		)
		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.Insert(ctx, Record("race"))
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					succeeded++
				case store.IsConflict(err):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, succeeded, fmt.Sprintf("conflicts=%d", conflicts))
		assert.Equal(t, workers-1, conflicts)
	})
}
