package store

import (
	"context"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/zerr"
)

// Opener implements ports.StoreOpener for every supported backend.
type Opener struct{}

// NewOpener creates an Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open returns the store selected by cfg.Backend.
func (o *Opener) Open(ctx context.Context, cfg domain.StoreConfig) (ports.KeyValueStore, error) {
	var (
		kv  ports.KeyValueStore
		err error
	)
	switch cfg.Backend {
	case domain.BackendFile, "":
		kv, err = unwrap(NewFile(cfg.ResolvedPath()))
	case domain.BackendMemory:
		kv = NewMemory()
	case domain.BackendBadger:
		kv, err = unwrap(OpenBadger(cfg.ResolvedPath()))
	case domain.BackendSQLite:
		kv, err = unwrap(OpenSQLite(ctx, cfg.ResolvedPath()))
	case domain.BackendRedis:
		kv, err = unwrap(OpenRedis(ctx, cfg.Redis))
	default:
		err = zerr.With(domain.ErrUnknownStoreBackend, "backend", string(cfg.Backend))
	}
	if err != nil {
		return nil, err
	}
	return kv, nil
}

// unwrap avoids returning a typed nil inside a non-nil interface.
func unwrap[T ports.KeyValueStore](s T, err error) (ports.KeyValueStore, error) {
	if err != nil {
		return nil, err
	}
	return s, nil
}
