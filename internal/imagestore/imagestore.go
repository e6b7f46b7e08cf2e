// Package imagestore wraps the external media-hosting service. Uploads take
// the image payload as the client submitted it (base64 string or data URI)
// and return a durable URL plus the store's asset identifier; deletes take
// that identifier back.
package imagestore

import (
	"context"
	"fmt"
	"strings"

	"dreamwall/internal/config"
)

// UploadResult is what the store hands back for a stored image.
type UploadResult struct {
	// URL serves the hosted image.
	URL string
	// AssetID identifies the asset for later deletion.
	AssetID string
}

type Store interface {
	Upload(ctx context.Context, image string) (*UploadResult, error)
	Delete(ctx context.Context, assetID string) error
}

// New selects the store backend from configuration.
func New(cfg *config.Config) (Store, error) {
	switch cfg.ImageStore {
	case "cloudinary":
		return NewCloudinaryStore(cfg.Cloudinary, cfg.UploadFolder)
	case "minio":
		return NewMinioStore(cfg.S3, cfg.UploadFolder)
	}
	return nil, fmt.Errorf("unknown image store backend %q", cfg.ImageStore)
}

// AssetIDFromURL derives the asset identifier from a hosted image URL: the
// final path segment with its file extension stripped, prefixed with the
// folder used at upload time. This assumes the URL shape the store produced
// at upload; posts created since the assetId field exists never need it.
func AssetIDFromURL(photoURL, folder string) string {
	segments := strings.Split(photoURL, "/")
	last := segments[len(segments)-1]
	if dot := strings.LastIndex(last, "."); dot > 0 {
		last = last[:dot]
	}
	return folder + "/" + last
}
