// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/toysetup/internal/adapters/cargo"
	_ "go.trai.ch/toysetup/internal/adapters/config"
	_ "go.trai.ch/toysetup/internal/adapters/console"
	_ "go.trai.ch/toysetup/internal/adapters/detector"
	_ "go.trai.ch/toysetup/internal/adapters/envstore"
	_ "go.trai.ch/toysetup/internal/adapters/fetch"
	_ "go.trai.ch/toysetup/internal/adapters/fs"
	_ "go.trai.ch/toysetup/internal/adapters/host"
	_ "go.trai.ch/toysetup/internal/adapters/logger"
	_ "go.trai.ch/toysetup/internal/adapters/receipts"
	_ "go.trai.ch/toysetup/internal/adapters/shell"
	_ "go.trai.ch/toysetup/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/toysetup/internal/app"
	_ "go.trai.ch/toysetup/internal/engine/provision"
)
