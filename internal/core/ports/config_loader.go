package ports

import "go.trai.ch/sourcehook/internal/core/domain"

// ConfigLoader defines the interface for loading the sourcehook configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds the configuration for the given working directory and resolves it.
	// A missing configuration file yields defaults rooted at cwd.
	Load(cwd string) (*domain.Config, error)
}
