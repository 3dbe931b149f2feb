package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/internal/adapters/store"
	"go.trai.ch/wltime/internal/core/ports"
)

type backend struct {
	name string
	open func(t *testing.T) ports.KeyValueStore
	// exact is true when BytesInUse counts only key and value bytes.
	exact bool
}

func backends() []backend {
	return []backend{
		{
			name:  "memory",
			exact: true,
			open: func(_ *testing.T) ports.KeyValueStore {
				return store.NewMemory()
			},
		},
		{
			name: "file",
			open: func(t *testing.T) ports.KeyValueStore {
				s, err := store.NewFile(filepath.Join(t.TempDir(), "durations"))
				require.NoError(t, err)
				return s
			},
		},
		{
			name:  "badger",
			exact: true,
			open: func(t *testing.T) ports.KeyValueStore {
				s, err := store.OpenBadger(t.TempDir())
				require.NoError(t, err)
				return s
			},
		},
		{
			name:  "sqlite",
			exact: true,
			open: func(t *testing.T) ports.KeyValueStore {
				s, err := store.OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "durations.db"))
				require.NoError(t, err)
				return s
			},
		},
		{
			name:  "redis",
			exact: true,
			open: func(t *testing.T) ports.KeyValueStore {
				mr := miniredis.RunT(t)
				client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
				return store.NewRedis(client, "wltime:")
			},
		},
	}
}

func TestKeyValueStores(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			ctx := context.Background()
			s := b.open(t)
			t.Cleanup(func() { _ = s.Close() })

			_, found, err := s.Get(ctx, "https://example.com/pd/1")
			require.NoError(t, err)
			assert.False(t, found)

			used, err := s.BytesInUse(ctx)
			require.NoError(t, err)
			assert.Zero(t, used)

			require.NoError(t, s.Set(ctx, "https://example.com/pd/1", "1 hr 5 min"))
			require.NoError(t, s.Set(ctx, "https://example.com/pd/2", "12 min"))
			require.NoError(t, s.Set(ctx, "https://example.com/pd/2", "13 min"))

			got, found, err := s.Get(ctx, "https://example.com/pd/1")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "1 hr 5 min", got)

			got, found, err = s.Get(ctx, "https://example.com/pd/2")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "13 min", got)

			used, err = s.BytesInUse(ctx)
			require.NoError(t, err)
			want := int64(len("https://example.com/pd/1") + len("1 hr 5 min") +
				len("https://example.com/pd/2") + len("13 min"))
			if b.exact {
				assert.Equal(t, want, used)
			} else {
				assert.GreaterOrEqual(t, used, want)
			}

			require.NoError(t, s.Clear(ctx))

			_, found, err = s.Get(ctx, "https://example.com/pd/1")
			require.NoError(t, err)
			assert.False(t, found)

			used, err = s.BytesInUse(ctx)
			require.NoError(t, err)
			assert.Zero(t, used)

			require.NoError(t, s.Set(ctx, "https://example.com/pd/3", "2 hr"))
			got, found, err = s.Get(ctx, "https://example.com/pd/3")
			require.NoError(t, err)
			assert.True(t, found)
			assert.Equal(t, "2 hr", got)
		})
	}
}
