package service

import (
	"context"
	"io"
)

// AssetStorage defines the interface for persisting media objects (video
// files, thumbnails, avatars, cover images) and returning their public URLs.
type AssetStorage interface {
	// Save uploads the content under the given object name and returns the
	// public URL where it can be fetched.
	Save(ctx context.Context, name string, r io.Reader) (string, error)
}
