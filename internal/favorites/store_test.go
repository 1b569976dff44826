package favorites

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewStore(client), mr
}

func TestStoreAddListRemove(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	rose := Snapshot{ID: 1, Name: "Rose Bouquet", Price: 2500, Images: []string{"https://cdn.example.com/rose.jpg"}}
	tulip := Snapshot{ID: 2, Name: "Tulip Bundle", Price: 1800}

	require.NoError(t, store.Add(ctx, "client-a", rose))
	require.NoError(t, store.Add(ctx, "client-a", tulip))

	snaps, err := store.List(ctx, "client-a")
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	require.Equal(t, "Rose Bouquet", snaps[0].Name)

	ok, err := store.IsFavorite(ctx, "client-a", 1)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Remove(ctx, "client-a", 1))
	ok, err = store.IsFavorite(ctx, "client-a", 1)
	require.NoError(t, err)
	require.False(t, ok)

	snaps, err = store.List(ctx, "client-a")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	require.Equal(t, int64(2), snaps[0].ID)
}

func TestStoreMutationsAreIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	snap := Snapshot{ID: 7, Name: "Peony"}
	require.NoError(t, store.Add(ctx, "client-b", snap))
	require.NoError(t, store.Add(ctx, "client-b", snap))

	snaps, err := store.List(ctx, "client-b")
	require.NoError(t, err)
	require.Len(t, snaps, 1)

	require.NoError(t, store.Remove(ctx, "client-b", 7))
	require.NoError(t, store.Remove(ctx, "client-b", 7))

	snaps, err = store.List(ctx, "client-b")
	require.NoError(t, err)
	require.Empty(t, snaps)
}

func TestStoreClientsAreIsolated(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "client-a", Snapshot{ID: 1}))

	snaps, err := store.List(ctx, "client-b")
	require.NoError(t, err)
	require.Empty(t, snaps)

	ok, err := store.IsFavorite(ctx, "client-b", 1)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStoreSnapshotSurvivesProductEdits(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Add(ctx, "client-a", Snapshot{ID: 3, Name: "Lily", Price: 1500}))

	// The product changes afterwards; the saved favorite keeps the
	// values captured at favorite time.
	snaps, err := store.List(ctx, "client-a")
	require.NoError(t, err)
	require.Equal(t, "Lily", snaps[0].Name)
	require.Equal(t, int64(1500), snaps[0].Price)
}

func TestStoreCorruptPayloadRehydratesEmpty(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	mr.Set("favorites:client-a", "{not json")

	snaps, err := store.List(ctx, "client-a")
	require.NoError(t, err)
	require.Empty(t, snaps)

	// The next mutation rewrites the key with a clean snapshot.
	require.NoError(t, store.Add(ctx, "client-a", Snapshot{ID: 9, Name: "Orchid"}))
	snaps, err = store.List(ctx, "client-a")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	require.Equal(t, int64(9), snaps[0].ID)
}
