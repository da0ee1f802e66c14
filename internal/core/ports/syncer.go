package ports

import "context"

// AssetSyncer downloads the performance save files.
//
//go:generate mockgen -source=syncer.go -destination=mocks/mock_syncer.go -package=mocks
type AssetSyncer interface {
	// Sync copies every known asset below dest. Individual asset failures are
	// logged; only an unusable sync tool is an error.
	Sync(ctx context.Context, dest string) error
}
