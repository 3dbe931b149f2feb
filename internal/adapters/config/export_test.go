package config

import "go.trai.ch/wltime/internal/core/ports"

// NewLoaderWithFS builds a Loader over fsys with a fixed per-user config path.
func NewLoaderWithFS(logger ports.Logger, fsys FileSystem, userPath string) *Loader {
	l := NewLoader(logger)
	l.fs = fsys
	l.userPath = func() (string, error) { return userPath, nil }
	return l
}
