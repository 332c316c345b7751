package ports

import "go.trai.ch/getlicense/internal/core/domain"

// ConfigLoader resolves the settings for a run.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings file at path. An empty path selects the default location.
	Load(path string) (*domain.Settings, error)
}
