package ports

import "go.trai.ch/wltime/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration. An empty path triggers discovery from cwd;
	// when nothing is found the defaults are returned.
	Load(cwd, path string) (*domain.Config, error)
}
