package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-authform/pkg/store"
	"github.com/goliatone/go-authform/pkg/testsupport"
)

func TestMemory_Contract(t *testing.T) {
	testsupport.RunUserStoreContract(t, func(*testing.T) store.UserStore {
		return store.NewMemory()
	})
}

func TestMemory_SeedSkipsCollisions(t *testing.T) {
	first := testsupport.Record("ada")
	s := store.NewMemory(first, testsupport.Record("ada"), testsupport.Record("grace"))

	users, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, first.ID, users[0].ID)
	assert.Equal(t, "grace", users[1].Username)
}

func TestMemory_ListIsDetached(t *testing.T) {
	ctx := context.Background()
	s := store.NewMemory(testsupport.Record("ada"))
	users, err := s.List(ctx)
	require.NoError(t, err)
	users[0].Username = "mallory"

	_, ok, err := s.Find(ctx, "ada")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestMemory_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := store.NewMemory()

	assert.ErrorIs(t, s.Insert(ctx, testsupport.Record("ada")), context.Canceled)
	_, _, err := s.Find(ctx, "ada")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = s.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
