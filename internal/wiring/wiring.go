// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/wltime/internal/adapters/config"
	_ "go.trai.ch/wltime/internal/adapters/logger"
	_ "go.trai.ch/wltime/internal/adapters/store"
	_ "go.trai.ch/wltime/internal/adapters/web"
	// Register app nodes.
	_ "go.trai.ch/wltime/internal/app"
)
