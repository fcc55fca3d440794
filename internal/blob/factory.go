package blob

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/shelterpaws/cattery/pkg/types"
)

// Open selects a Store implementation from the blob section of the config.
// An empty driver defaults to the filesystem; an empty fs root defaults to
// "blobs" inside the data directory.
func Open(ctx context.Context, cfg types.Config) (Store, error) {
	driver := cfg.Blob.Driver
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		root := cfg.Blob.Root
		if root == "" {
			root = filepath.Join(cfg.DataDir, "blobs")
		}
		return NewFilesystem(root)
	case DriverS3:
		return NewS3(ctx, cfg.Blob)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown blob driver %s", driver)
	}
}
