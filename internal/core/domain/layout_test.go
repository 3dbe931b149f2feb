package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wltime/internal/core/domain"
)

func TestDefaultStorePath(t *testing.T) {
	root := domain.DefaultCacheRoot()

	tests := []struct {
		name     string
		backend  domain.StoreBackend
		expected string
	}{
		{name: "file", backend: domain.BackendFile, expected: filepath.Join(root, domain.StoreDirName)},
		{name: "memory", backend: domain.BackendMemory, expected: filepath.Join(root, domain.StoreDirName)},
		{name: "badger", backend: domain.BackendBadger, expected: filepath.Join(root, domain.BadgerDirName)},
		{name: "sqlite", backend: domain.BackendSQLite, expected: filepath.Join(root, domain.SQLiteFileName)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, domain.DefaultStorePath(tt.backend))
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()

	assert.Equal(t, domain.BackendFile, cfg.Store.Backend)
	assert.Equal(t, int64(5*1024*1024-1024), cfg.Store.Limit())
	assert.Equal(t, domain.AutoColumn, cfg.Table.Column)
	assert.Equal(t, "Time", cfg.Table.HeaderLabel)
	assert.Equal(t, "adbl-run-time", cfg.Table.MarkerClass)
	assert.False(t, cfg.Coalesce)
	assert.Equal(t, domain.DefaultStorePath(domain.BackendFile), cfg.Store.ResolvedPath())
}

func TestStoreConfig_ResolvedPath(t *testing.T) {
	cfg := domain.StoreConfig{Backend: domain.BackendSQLite, Path: "/tmp/custom.db"}
	assert.Equal(t, "/tmp/custom.db", cfg.ResolvedPath())

	cfg.Path = ""
	assert.Equal(t, domain.DefaultStorePath(domain.BackendSQLite), cfg.ResolvedPath())
}
