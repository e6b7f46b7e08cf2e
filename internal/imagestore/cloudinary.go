package imagestore

import (
	"context"
	"fmt"

	"dreamwall/internal/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStore hosts images on Cloudinary under a fixed folder, letting
// the service pick format and quality automatically.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func NewCloudinaryStore(cfg config.CloudinaryConfig, folder string) (*CloudinaryStore, error) {
	cld, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("cloudinary configuration error: %w", err)
	}
	return &CloudinaryStore{cld: cld, folder: folder}, nil
}

func (s *CloudinaryStore) Upload(ctx context.Context, image string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, image, uploader.UploadParams{
		Folder:         s.folder,
		ResourceType:   "auto",
		Transformation: "q_auto/f_auto",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("failed to upload image: %s", result.Error.Message)
	}

	return &UploadResult{
		URL:     result.SecureURL,
		AssetID: result.PublicID,
	}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, assetID string) error {
	result, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: assetID})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	if result.Result != "ok" {
		return fmt.Errorf("failed to delete image: %s", result.Result)
	}
	return nil
}
