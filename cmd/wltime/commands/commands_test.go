package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/wltime/cmd/wltime/commands"
	"go.trai.ch/wltime/internal/app"
	"go.trai.ch/wltime/internal/build"
	"go.trai.ch/wltime/internal/core/domain"
)

type mockApp struct {
	sortFunc  func(ctx context.Context, location string, opts app.SortOptions) error
	getFunc   func(ctx context.Context, urls []string, opts app.Options) ([]app.Result, error)
	statsFunc func(ctx context.Context, opts app.Options) (app.CacheStats, error)
	clearFunc func(ctx context.Context, opts app.Options) error

	jsonLogs, verbose bool
}

func (m *mockApp) Sort(ctx context.Context, location string, opts app.SortOptions) error {
	if m.sortFunc != nil {
		return m.sortFunc(ctx, location, opts)
	}
	return nil
}

func (m *mockApp) Get(ctx context.Context, urls []string, opts app.Options) ([]app.Result, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, urls, opts)
	}
	return nil, nil
}

func (m *mockApp) CacheStats(ctx context.Context, opts app.Options) (app.CacheStats, error) {
	if m.statsFunc != nil {
		return m.statsFunc(ctx, opts)
	}
	return app.CacheStats{}, nil
}

func (m *mockApp) CacheClear(ctx context.Context, opts app.Options) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(jsonLogs, verbose bool) {
	m.jsonLogs, m.verbose = jsonLogs, verbose
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Sort(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.SortOptions
		var location string
		mock := &mockApp{
			sortFunc: func(_ context.Context, loc string, opts app.SortOptions) error {
				location, captured = loc, opts
				return nil
			},
		}

		_, err := execute(t, mock, "sort", "wishlist.html", "--reverse", "-o", "tui",
			"--config", "wl.yaml", "--store", "sqlite", "--coalesce", "--verbose")
		require.NoError(t, err)

		assert.Equal(t, "wishlist.html", location)
		assert.Equal(t, app.SortOptions{
			Options:    app.Options{ConfigPath: "wl.yaml", Store: "sqlite", Coalesce: true},
			Reverse:    true,
			OutputMode: "tui",
		}, captured)
		assert.True(t, mock.verbose)
		assert.False(t, mock.jsonLogs)
	})

	t.Run("ci forces linear output", func(t *testing.T) {
		var captured app.SortOptions
		mock := &mockApp{
			sortFunc: func(_ context.Context, _ string, opts app.SortOptions) error {
				captured = opts
				return nil
			},
		}

		_, err := execute(t, mock, "sort", "https://example.com/wl", "--ci", "--json-logs")
		require.NoError(t, err)
		assert.Equal(t, "linear", captured.OutputMode)
		assert.True(t, mock.jsonLogs)
	})

	t.Run("requires a wishlist", func(t *testing.T) {
		mock := &mockApp{
			sortFunc: func(context.Context, string, app.SortOptions) error {
				panic("should not be called")
			},
		}

		_, err := execute(t, mock, "sort")
		require.Error(t, err)
	})

	t.Run("returns error on sort failure", func(t *testing.T) {
		mock := &mockApp{
			sortFunc: func(context.Context, string, app.SortOptions) error {
				return errors.New("simulated error")
			},
		}

		_, err := execute(t, mock, "sort", "wishlist.html")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Get(t *testing.T) {
	t.Run("prints resolved items", func(t *testing.T) {
		mock := &mockApp{
			getFunc: func(_ context.Context, urls []string, _ app.Options) ([]app.Result, error) {
				assert.Equal(t, []string{"https://a", "https://b", "https://c"}, urls)
				return []app.Result{
					{URL: "https://a", Duration: "10 hr 5 min"},
					{URL: "https://b", Err: domain.ErrNetwork},
					{URL: "https://c"},
				}, domain.ErrLookupFailed
			},
		}

		out, err := execute(t, mock, "get", "https://a", "https://b", "https://c")
		require.ErrorIs(t, err, domain.ErrLookupFailed)
		assert.Equal(t, "10 hr 5 min  https://a\n-            https://c\n", out)
	})

	t.Run("shows usage when no urls provided", func(t *testing.T) {
		mock := &mockApp{
			getFunc: func(context.Context, []string, app.Options) ([]app.Result, error) {
				panic("should not be called")
			},
		}

		out, err := execute(t, mock, "get")
		require.NoError(t, err)
		assert.Contains(t, out, "Usage:")
	})
}

func TestCommands_Cache(t *testing.T) {
	t.Run("stats", func(t *testing.T) {
		mock := &mockApp{
			statsFunc: func(_ context.Context, opts app.Options) (app.CacheStats, error) {
				assert.Equal(t, "redis", opts.Store)
				return app.CacheStats{Backend: domain.BackendRedis, Location: "localhost:6379", Used: 10, Limit: 100}, nil
			},
		}

		out, err := execute(t, mock, "cache", "stats", "--store", "redis")
		require.NoError(t, err)
		assert.Equal(t, "redis store at localhost:6379: 10 of 100 bytes used\n", out)
	})

	t.Run("clear", func(t *testing.T) {
		called := false
		mock := &mockApp{
			clearFunc: func(context.Context, app.Options) error {
				called = true
				return nil
			},
		}

		_, err := execute(t, mock, "cache", "clear")
		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("stats failure", func(t *testing.T) {
		mock := &mockApp{
			statsFunc: func(context.Context, app.Options) (app.CacheStats, error) {
				return app.CacheStats{}, domain.ErrStoreSizeFailed
			},
		}

		_, err := execute(t, mock, "cache", "stats")
		require.ErrorIs(t, err, domain.ErrStoreSizeFailed)
	})
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Equal(t, "wltime version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", out)

	out, err = execute(t, &mockApp{}, "--version")
	require.NoError(t, err)
	assert.Contains(t, out, "wltime version "+build.Version)
}
