package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/internal/adapters/store"
	"go.trai.ch/wltime/internal/core/domain"
)

func TestFile_PersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "durations")

	first, err := store.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "https://example.com/pd/1", "4 hr"))

	second, err := store.NewFile(dir)
	require.NoError(t, err)
	got, found, err := second.Get(ctx, "https://example.com/pd/1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "4 hr", got)
}

func TestFile_CorruptEntry(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := store.NewFile(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "u", "1 hr"))

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.NoError(t, os.WriteFile(files[0], []byte("{not json"), domain.FilePerm))

	_, _, err = s.Get(ctx, "u")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreUnmarshalFailed.Error())
}

func TestFile_ClearKeepsForeignFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := store.NewFile(dir)
	require.NoError(t, err)

	foreign := filepath.Join(dir, "README")
	require.NoError(t, os.WriteFile(foreign, []byte("keep me"), domain.FilePerm))
	require.NoError(t, s.Set(ctx, "u", "1 hr"))

	require.NoError(t, s.Clear(ctx))

	_, err = os.Stat(foreign)
	require.NoError(t, err)
	used, err := s.BytesInUse(ctx)
	require.NoError(t, err)
	assert.Zero(t, used)
}
