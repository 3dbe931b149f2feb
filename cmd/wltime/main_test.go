package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/wltime/internal/adapters/store"
	"go.trai.ch/wltime/internal/app"
	"go.trai.ch/wltime/internal/core/domain"
	"go.trai.ch/wltime/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type appMocks struct {
	loader    *mocks.MockConfigLoader
	opener    *mocks.MockStoreOpener
	transport *mocks.MockTransportFactory
	fetcher   *mocks.MockDocumentFetcher
	logger    *mocks.MockLogger
}

func newProvider(t *testing.T) (ComponentProvider, appMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := appMocks{
		loader:    mocks.NewMockConfigLoader(ctrl),
		opener:    mocks.NewMockStoreOpener(ctrl),
		transport: mocks.NewMockTransportFactory(ctrl),
		fetcher:   mocks.NewMockDocumentFetcher(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	application := app.New(m.loader, m.opener, m.transport, m.logger).WithWorkingDir("/work")

	cleaned := false
	t.Cleanup(func() {
		assert.True(t, cleaned, "cleanup was not called")
	})

	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: m.logger}, func() { cleaned = true }, nil
	}, m
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	provider, _ := newProvider(t)

	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that command errors are logged and exit with 1.
func TestRun_ExecutionError(t *testing.T) {
	provider, m := newProvider(t)

	loadErr := errors.New("load failed")
	m.loader.EXPECT().Load("/work", "").Return(nil, loadErr)
	m.logger.EXPECT().Error(loadErr)

	exitCode := run(context.Background(), []string{"cache", "stats"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_LookupFailureNotLoggedTwice verifies the aggregate lookup error is not logged again.
func TestRun_LookupFailureNotLoggedTwice(t *testing.T) {
	provider, m := newProvider(t)

	cfg := domain.DefaultConfig()
	cfg.Store.Backend = domain.BackendMemory
	m.loader.EXPECT().Load("/work", "").Return(&cfg, nil)
	m.opener.EXPECT().Open(gomock.Any(), gomock.Any()).Return(store.NewMemory(), nil)
	m.transport.EXPECT().NewFetcher(gomock.Any()).Return(m.fetcher)
	m.fetcher.EXPECT().FetchDocument(gomock.Any(), "https://example.com/pd/x").Return(nil, domain.ErrNetwork)
	m.logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	m.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"get", "https://example.com/pd/x"}, new(bytes.Buffer), provider)
	assert.Equal(t, 1, exitCode)
}
