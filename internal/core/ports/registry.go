package ports

import "go.trai.ch/babblewitz/internal/core/domain"

// Discovery is the result of scanning the implementations directory.
type Discovery struct {
	// Implementations are the valid implementations sorted by name.
	Implementations []*domain.Implementation
	// Invalid lists directories whose configuration was semantically invalid.
	Invalid []domain.InvalidImplementation
}

// ImplementationRegistry loads implementation configurations.
//
//go:generate mockgen -source=registry.go -destination=mocks/mock_registry.go -package=mocks
type ImplementationRegistry interface {
	// Discover loads every implementation directory under root. Semantically
	// invalid configurations are listed in Discovery.Invalid; a configuration
	// that cannot be decoded at all is returned as an error.
	Discover(root string) (Discovery, error)

	// Load loads the implementation in dir.
	Load(dir string) (*domain.Implementation, error)
}
