// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/sourcehook/internal/adapters/compilerhost"
	_ "go.trai.ch/sourcehook/internal/adapters/config"
	_ "go.trai.ch/sourcehook/internal/adapters/fs"
	_ "go.trai.ch/sourcehook/internal/adapters/handshake"
	_ "go.trai.ch/sourcehook/internal/adapters/logger"
	// Register app nodes.
	_ "go.trai.ch/sourcehook/internal/app"
)
