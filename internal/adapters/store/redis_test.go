package store_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/internal/adapters/store"
	"go.trai.ch/wltime/internal/core/domain"
)

func TestRedis_ClearOnlyTouchesPrefix(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	require.NoError(t, mr.Set("other:key", "untouched"))

	s, err := store.OpenRedis(ctx, domain.RedisConfig{Addr: mr.Addr(), Prefix: "wltime:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.Set(ctx, "https://example.com/pd/1", "3 hr"))
	got, err := mr.Get("wltime:https://example.com/pd/1")
	require.NoError(t, err)
	assert.Equal(t, "3 hr", got)

	require.NoError(t, s.Clear(ctx))

	assert.False(t, mr.Exists("wltime:https://example.com/pd/1"))
	assert.True(t, mr.Exists("other:key"))
}

func TestOpenRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := store.OpenRedis(context.Background(), domain.RedisConfig{Addr: addr})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreOpenFailed.Error())
}
