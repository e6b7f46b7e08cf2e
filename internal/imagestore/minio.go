package imagestore

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"dreamwall/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultContentType = "image/png"

// MinioStore hosts images in an S3-compatible bucket. The bucket must allow
// anonymous reads for the returned URLs to serve.
type MinioStore struct {
	client    *minio.Client
	bucket    string
	folder    string
	publicURL string
}

func NewMinioStore(cfg config.S3Config, folder string) (*MinioStore, error) {
	client, err := minio.New(cfg.Host, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}

	publicURL := cfg.PublicURL
	if publicURL == "" {
		scheme := "http"
		if cfg.UseSSL {
			scheme = "https"
		}
		publicURL = fmt.Sprintf("%s://%s", scheme, cfg.Host)
	}

	return &MinioStore{
		client:    client,
		bucket:    cfg.Bucket,
		folder:    folder,
		publicURL: strings.TrimSuffix(publicURL, "/"),
	}, nil
}

func (s *MinioStore) Upload(ctx context.Context, image string) (*UploadResult, error) {
	data, contentType, err := decodeImage(image)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	key := fmt.Sprintf("%s/%d%s", s.folder, time.Now().UnixNano(), extensionFor(contentType))

	_, err = s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	return &UploadResult{
		URL:     fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, key),
		AssetID: key,
	}, nil
}

func (s *MinioStore) Delete(ctx context.Context, assetID string) error {
	err := s.client.RemoveObject(ctx, s.bucket, assetID, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete image: %w", err)
	}
	return nil
}

// decodeImage accepts either a bare base64 string or a data URI and returns
// the raw bytes plus the declared content type.
func decodeImage(image string) ([]byte, string, error) {
	contentType := defaultContentType
	payload := image

	if strings.HasPrefix(image, "data:") {
		meta, rest, ok := strings.Cut(image, ",")
		if !ok {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta = strings.TrimPrefix(meta, "data:")
		meta = strings.TrimSuffix(meta, ";base64")
		if meta != "" {
			contentType = meta
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", err
	}
	return data, contentType, nil
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
