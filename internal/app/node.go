package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/wltime/internal/adapters/config"
	"go.trai.ch/wltime/internal/adapters/logger"
	"go.trai.ch/wltime/internal/adapters/store"
	"go.trai.ch/wltime/internal/adapters/web"
	"go.trai.ch/wltime/internal/core/ports"
)

// AppNodeID is the unique identifier for the main application Graft node.
const AppNodeID graft.ID = "app.main"

// Components bundles what the command line needs.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			store.NodeID,
			web.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			loader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			opener, err := graft.Dep[ports.StoreOpener](ctx)
			if err != nil {
				return nil, err
			}
			transport, err := graft.Dep[ports.TransportFactory](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(loader, opener, transport, log),
				Logger: log,
			}, nil
		},
	})
}
