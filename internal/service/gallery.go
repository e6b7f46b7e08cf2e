// Package service holds the gallery orchestration: the two-step create
// (upload image, then persist the record) and the two-step delete (remove
// the hosted image, then the record). The two stores are never updated
// atomically; the ordering below is what keeps them consistent in the happy
// path.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"dreamwall/internal/imagestore"
	"dreamwall/internal/models"
	"dreamwall/internal/repository"
)

// ErrInvalidArgument is returned when a required field is empty; nothing
// external is touched in that case.
var ErrInvalidArgument = errors.New("missing required field")

type GalleryService struct {
	posts  repository.PostRepository
	images imagestore.Store
	folder string
}

func NewGalleryService(posts repository.PostRepository, images imagestore.Store, folder string) *GalleryService {
	return &GalleryService{posts: posts, images: images, folder: folder}
}

// CreatePost uploads the image and then persists the post record. An upload
// failure aborts before anything is persisted. An insert failure after a
// successful upload leaves the uploaded asset orphaned in the image store;
// there is no compensating delete.
func (s *GalleryService) CreatePost(ctx context.Context, name, prompt, photo string) (*models.Post, error) {
	if name == "" || prompt == "" || photo == "" {
		return nil, fmt.Errorf("%w: name, prompt, and photo are required", ErrInvalidArgument)
	}

	upload, err := s.images.Upload(ctx, photo)
	if err != nil {
		return nil, fmt.Errorf("failed to upload image: %w", err)
	}

	post, err := s.posts.Insert(ctx, models.Post{
		Name:    name,
		Prompt:  prompt,
		Photo:   upload.URL,
		AssetID: upload.AssetID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

// DeletePost removes the hosted image and then the post record. The image
// deletion is best effort: its failure is logged and reported through the
// returned warning, and the record deletion proceeds regardless.
func (s *GalleryService) DeletePost(ctx context.Context, id string) (warning string, err error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return "", err
	}

	assetID := post.AssetID
	if assetID == "" {
		// Records persisted before assetId existed; fall back to the
		// URL-derived identifier.
		assetID = imagestore.AssetIDFromURL(post.Photo, s.folder)
	}

	if err := s.images.Delete(ctx, assetID); err != nil {
		log.Printf("DeletePost %s: image deletion failed for asset %s: %v", id, assetID, err)
		warning = fmt.Sprintf("image deletion failed: %v", err)
	}

	if err := s.posts.DeleteByID(ctx, id); err != nil {
		return "", fmt.Errorf("failed to delete post: %w", err)
	}

	return warning, nil
}

// ListPosts returns every stored post in whatever order the store yields
// them; ordering is a display concern.
func (s *GalleryService) ListPosts(ctx context.Context) ([]models.Post, error) {
	posts, err := s.posts.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch posts: %w", err)
	}
	return posts, nil
}

func (s *GalleryService) GetPost(ctx context.Context, id string) (*models.Post, error) {
	return s.posts.FindByID(ctx, id)
}
