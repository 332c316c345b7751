// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/getlicense/internal/adapters/cachefile"
	_ "go.trai.ch/getlicense/internal/adapters/config"
	_ "go.trai.ch/getlicense/internal/adapters/logger"
	_ "go.trai.ch/getlicense/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/getlicense/internal/app"
)
