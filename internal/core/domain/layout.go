package domain

import (
	"os"
	"path/filepath"
)

const (
	// AppName is the name used for the cache and config directories.
	AppName = "wltime"

	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "wltime.yaml"

	// StoreDirName is the name of the file store directory.
	StoreDirName = "durations"

	// BadgerDirName is the name of the badger store directory.
	BadgerDirName = "badger"

	// SQLiteFileName is the name of the sqlite store database.
	SQLiteFileName = "durations.db"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultCacheRoot returns the per-user directory holding wltime state.
// It falls back to a relative .wltime directory when no cache dir is known.
func DefaultCacheRoot() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "." + AppName
	}
	return filepath.Join(dir, AppName)
}

// DefaultStorePath returns the default path for the given store backend.
func DefaultStorePath(backend StoreBackend) string {
	root := DefaultCacheRoot()
	switch backend {
	case BackendBadger:
		return filepath.Join(root, BadgerDirName)
	case BackendSQLite:
		return filepath.Join(root, SQLiteFileName)
	default:
		return filepath.Join(root, StoreDirName)
	}
}

// UserConfigPath returns the per-user config file location.
func UserConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppName, ConfigFileName), nil
}
