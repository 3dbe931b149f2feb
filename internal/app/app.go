// Package app implements the application layer for wltime.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/wltime/internal/adapters/detector"
	"go.trai.ch/wltime/internal/adapters/linear"
	"go.trai.ch/wltime/internal/adapters/telemetry"
	"go.trai.ch/wltime/internal/adapters/tui"
	"go.trai.ch/wltime/internal/adapters/web"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports"
	"go.trai.ch/wltime/internal/engine/timecache"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.StoreOpener
	transport    ports.TransportFactory
	logger       ports.Logger
	renderer     ports.Renderer
	stdout       io.Writer
	teaOptions   []tea.ProgramOption
	getwd        func() (string, error)
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.StoreOpener,
	transport ports.TransportFactory,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		transport:    transport,
		logger:       log,
		stdout:       os.Stdout,
		getwd:        os.Getwd,
	}
}

// WithRenderer makes Sort use r instead of detecting a renderer.
func (a *App) WithRenderer(r ports.Renderer) *App {
	a.renderer = r
	return a
}

// WithOutput sets the writer tables are rendered to.
func (a *App) WithOutput(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTeaOptions adds bubbletea program options to the interactive view.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// WithWorkingDir fixes the directory configuration discovery starts from.
func (a *App) WithWorkingDir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// ConfigureLogging switches the logger to JSON output and/or debug level
// when the logger supports it.
func (a *App) ConfigureLogging(json, verbose bool) {
	if l, ok := a.logger.(interface {
		SetJSON(bool)
		SetVerbose(bool)
	}); ok {
		l.SetJSON(json)
		l.SetVerbose(verbose)
	}
}

// Options are the settings shared by every command.
type Options struct {
	// ConfigPath names the config file; empty means discovery.
	ConfigPath string
	// Store overrides store.backend.
	Store string
	// Coalesce turns on single-flight lookups when set.
	Coalesce bool
}

// SortOptions configuration for the Sort method.
type SortOptions struct {
	Options
	// Reverse starts with the longest item first.
	Reverse bool
	// OutputMode is one of auto, tui or linear.
	OutputMode string
}

// Sort loads the wishlist at location, resolves the duration of every item,
// sorts the table by duration and renders it.
func (a *App) Sort(ctx context.Context, location string, opts SortOptions) error {
	mode, err := detector.ParseMode(opts.OutputMode)
	if err != nil {
		return err
	}

	s, err := a.openSession(ctx, opts.Options)
	if err != nil {
		return err
	}
	defer s.close(ctx, a.logger)

	rows := web.NewWishlist(s.fetcher, s.cfg.Table)
	table, err := rows.LoadTable(ctx, location)
	if err != nil {
		return err
	}

	ResolveTable(ctx, table, s.repo, a.logger)
	a.logger.Info(s.tally.Summary().String())

	state := &domain.SortState{Descending: opts.Reverse}
	state.Toggle(table)

	return a.rendererFor(mode).Render(ctx, table, state)
}

// ResolveTable fills the time cell of every linked row concurrently.
// Failed rows are logged and keep no time cell; they never cancel the others.
func ResolveTable(ctx context.Context, t *domain.Table, durations ports.DurationProvider, log ports.Logger) {
	var g errgroup.Group
	for _, row := range t.Rows {
		if row.Link == "" || t.IsHeader(row) {
			continue
		}
		g.Go(func() error {
			d, err := durations.GetDuration(ctx, row.Link)
			if err != nil {
				log.Error(zerr.With(err, "item", row.Link))
				return nil
			}
			row.SetCell(t.TimeColumn, d)
			return nil
		})
	}
	_ = g.Wait()
}

// Result is the outcome of one lookup.
type Result struct {
	URL      string
	Duration string
	Err      error
}

// Get resolves the duration of each url. Results keep the order of urls.
// Failures are logged and reported together as domain.ErrLookupFailed.
func (a *App) Get(ctx context.Context, urls []string, opts Options) ([]Result, error) {
	if len(urls) == 0 {
		return nil, domain.ErrNoURLsSpecified
	}

	s, err := a.openSession(ctx, opts)
	if err != nil {
		return nil, err
	}
	defer s.close(ctx, a.logger)

	results := make([]Result, len(urls))
	var g errgroup.Group
	for i, u := range urls {
		g.Go(func() error {
			d, err := s.repo.GetDuration(ctx, u)
			results[i] = Result{URL: u, Duration: d, Err: err}
			return nil
		})
	}
	_ = g.Wait()

	a.logger.Debug(s.tally.Summary().String())

	failed := false
	for _, r := range results {
		if r.Err != nil {
			failed = true
			a.logger.Error(zerr.With(r.Err, "item", r.URL))
		}
	}
	if failed {
		return results, domain.ErrLookupFailed
	}
	return results, nil
}

// CacheStats describes the duration store.
type CacheStats struct {
	Backend domain.StoreBackend
	// Location is the store path, or the redis address.
	Location string
	Used     int64
	Limit    int64
}

// String returns a one-line summary.
func (c CacheStats) String() string {
	return fmt.Sprintf("%s store at %s: %d of %d bytes used", c.Backend, c.Location, c.Used, c.Limit)
}

// CacheStats reports how much of the quota the store occupies.
func (a *App) CacheStats(ctx context.Context, opts Options) (CacheStats, error) {
	s, err := a.openSession(ctx, opts)
	if err != nil {
		return CacheStats{}, err
	}
	defer s.close(ctx, a.logger)

	used, limit, err := s.cache.Stats(ctx)
	if err != nil {
		return CacheStats{}, err
	}
	return CacheStats{
		Backend:  s.cfg.Store.Backend,
		Location: storeLocation(s.cfg.Store),
		Used:     used,
		Limit:    limit,
	}, nil
}

// CacheClear removes every cached duration.
func (a *App) CacheClear(ctx context.Context, opts Options) error {
	s, err := a.openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.close(ctx, a.logger)

	if err := s.cache.Clear(ctx); err != nil {
		return err
	}
	a.logger.Info("cleared " + string(s.cfg.Store.Backend) + " store at " + storeLocation(s.cfg.Store))
	return nil
}

func storeLocation(cfg domain.StoreConfig) string {
	switch cfg.Backend {
	case domain.BackendRedis:
		return cfg.Redis.Addr
	case domain.BackendMemory:
		return "memory"
	default:
		return cfg.ResolvedPath()
	}
}

func (a *App) rendererFor(mode detector.OutputMode) ports.Renderer {
	if a.renderer != nil {
		return a.renderer
	}
	mode = detector.ResolveMode(detector.DetectEnvironment(a.stdout), mode)
	if mode == detector.ModeTUI {
		return tui.NewRenderer(a.stdout, a.teaOptions...)
	}
	return linear.NewRenderer(a.stdout)
}

// session holds the per-command pipeline built from the loaded configuration.
type session struct {
	cfg      *domain.Config
	store    ports.KeyValueStore
	cache    *timecache.Cache
	fetcher  ports.DocumentFetcher
	repo     *timecache.Repository
	tally    *telemetry.Tally
	provider *sdktrace.TracerProvider
}

func (a *App) openSession(ctx context.Context, opts Options) (*session, error) {
	cwd, err := a.getwd()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to determine working directory")
	}

	cfg, err := a.configLoader.Load(cwd, opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Store != "" {
		cfg.Store.Backend = domain.StoreBackend(opts.Store)
	}
	if opts.Coalesce {
		cfg.Coalesce = true
	}

	kv, err := a.opener.Open(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}

	tally := telemetry.NewTally()
	provider := telemetry.NewProvider(tally)
	tracer := telemetry.NewOTelTracerFrom(provider, telemetry.InstrumentationName)

	fetcher := a.transport.NewFetcher(cfg.Fetch)
	cache := timecache.NewCache(kv, cfg.Store.Limit(), a.logger)
	resolver := timecache.NewResolver(fetcher, cfg.Table.MarkerClass)

	var repoOpts []timecache.Option
	if cfg.Coalesce {
		repoOpts = append(repoOpts, timecache.WithCoalescing())
	}

	return &session{
		cfg:      cfg,
		store:    kv,
		cache:    cache,
		fetcher:  fetcher,
		repo:     timecache.NewRepository(cache, resolver, tracer, a.logger, repoOpts...),
		tally:    tally,
		provider: provider,
	}, nil
}

func (s *session) close(ctx context.Context, log ports.Logger) {
	if err := s.provider.Shutdown(context.WithoutCancel(ctx)); err != nil {
		log.Warn("failed to shut down tracer provider: " + err.Error())
	}
	if err := s.store.Close(); err != nil {
		log.Warn("failed to close duration store: " + err.Error())
	}
}
