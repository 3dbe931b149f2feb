// Package config provides the configuration loader for wltime.
package config

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"path/filepath"
	"time"

	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
	fs     FileSystem
	// userPath returns the per-user config file location.
	userPath func() (string, error)
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		fs:       NewOSFS(),
		userPath: domain.UserConfigPath,
	}
}

// Load returns the configuration read from path, or from the first
// wltime.yaml found walking up from cwd, or from the per-user config file.
// Defaults are returned when no file exists.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	if path == "" {
		path = l.findConfiguration(cwd)
	}

	cfg := domain.DefaultConfig()
	if path == "" {
		return &cfg, nil
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	if err := apply(&cfg, &file); err != nil {
		return nil, zerr.With(err, "path", path)
	}
	if err := Validate(&cfg); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.Logger.Debug("loaded configuration from " + path)
	return &cfg, nil
}

func (l *Loader) findConfiguration(cwd string) string {
	if cwd != "" {
		currentDir := cwd
		for {
			candidate := filepath.Join(currentDir, domain.ConfigFileName)
			if l.isFile(candidate) {
				return candidate
			}

			parentDir := filepath.Dir(currentDir)
			if parentDir == currentDir {
				break
			}
			currentDir = parentDir
		}
	}

	if l.userPath == nil {
		return ""
	}
	userPath, err := l.userPath()
	if err != nil || !l.isFile(userPath) {
		return ""
	}
	return userPath
}

func (l *Loader) isFile(path string) bool {
	info, err := l.fs.Stat(path)
	return err == nil && !info.IsDir()
}

//nolint:gocyclo // one branch per optional key
func apply(cfg *domain.Config, f *File) error {
	if s := f.Store; s != nil {
		if s.Backend != "" {
			cfg.Store.Backend = domain.StoreBackend(s.Backend)
		}
		if s.Path != "" {
			cfg.Store.Path = s.Path
		}
		if s.QuotaBytes != nil {
			cfg.Store.QuotaBytes = *s.QuotaBytes
		}
		if s.QuotaMargin != nil {
			cfg.Store.QuotaMargin = *s.QuotaMargin
		}
		if r := s.Redis; r != nil {
			if r.Addr != "" {
				cfg.Store.Redis.Addr = r.Addr
			}
			cfg.Store.Redis.Password = r.Password
			if r.DB != nil {
				cfg.Store.Redis.DB = *r.DB
			}
			if r.Prefix != nil {
				cfg.Store.Redis.Prefix = *r.Prefix
			}
		}
	}

	if fe := f.Fetch; fe != nil {
		if fe.Timeout != "" {
			d, err := time.ParseDuration(fe.Timeout)
			if err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "field", "fetch.timeout")
			}
			cfg.Fetch.Timeout = d
		}
		if fe.UserAgent != "" {
			cfg.Fetch.UserAgent = fe.UserAgent
		}
		if fe.RequestsPerSecond != nil {
			cfg.Fetch.RequestsPerSecond = *fe.RequestsPerSecond
		}
		if fe.Burst != nil {
			cfg.Fetch.Burst = *fe.Burst
		}
	}

	if t := f.Table; t != nil {
		if t.Column != nil {
			cfg.Table.Column = *t.Column
		}
		if t.HeaderLabel != "" {
			cfg.Table.HeaderLabel = t.HeaderLabel
		}
		if t.MarkerClass != "" {
			cfg.Table.MarkerClass = t.MarkerClass
		}
		if t.TitleClass != "" {
			cfg.Table.TitleClass = t.TitleClass
		}
		if t.BaseURL != "" {
			cfg.Table.BaseURL = t.BaseURL
		}
	}

	if f.Coalesce != nil {
		cfg.Coalesce = *f.Coalesce
	}
	return nil
}

// Validate checks cfg for values the pipeline cannot work with.
func Validate(cfg *domain.Config) error {
	invalid := func(field string, value any) error {
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "field", field), "value", value)
	}

	switch cfg.Store.Backend {
	case domain.BackendFile, domain.BackendMemory, domain.BackendBadger,
		domain.BackendSQLite, domain.BackendRedis:
	default:
		return zerr.With(domain.ErrUnknownStoreBackend, "backend", string(cfg.Store.Backend))
	}
	if cfg.Store.QuotaBytes <= 0 {
		return invalid("store.quota_bytes", cfg.Store.QuotaBytes)
	}
	if cfg.Store.QuotaMargin < 0 || cfg.Store.QuotaMargin >= cfg.Store.QuotaBytes {
		return invalid("store.quota_margin", cfg.Store.QuotaMargin)
	}
	if cfg.Fetch.Timeout <= 0 {
		return invalid("fetch.timeout", cfg.Fetch.Timeout.String())
	}
	if cfg.Fetch.RequestsPerSecond < 0 {
		return invalid("fetch.requests_per_second", cfg.Fetch.RequestsPerSecond)
	}
	if cfg.Fetch.Burst < 1 {
		return invalid("fetch.burst", cfg.Fetch.Burst)
	}
	if cfg.Table.Column < domain.AutoColumn {
		return invalid("table.column", cfg.Table.Column)
	}
	if cfg.Table.MarkerClass == "" {
		return invalid("table.marker_class", cfg.Table.MarkerClass)
	}
	if cfg.Table.TitleClass == "" {
		return invalid("table.title_class", cfg.Table.TitleClass)
	}
	if cfg.Table.BaseURL != "" {
		u, err := url.Parse(cfg.Table.BaseURL)
		if err != nil || !u.IsAbs() {
			return invalid("table.base_url", cfg.Table.BaseURL)
		}
	}
	return nil
}
