package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dreamwall/internal/imagestore"
	"dreamwall/internal/models"
	"dreamwall/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stubStore counts image store calls and records their order in events.
type stubStore struct {
	uploads   int
	deletes   int
	uploadErr error
	deleteErr error
	deleted   []string
	events    *[]string
}

func (s *stubStore) Upload(ctx context.Context, image string) (*imagestore.UploadResult, error) {
	s.uploads++
	if s.events != nil {
		*s.events = append(*s.events, "upload")
	}
	if s.uploadErr != nil {
		return nil, s.uploadErr
	}
	return &imagestore.UploadResult{
		URL:     fmt.Sprintf("https://images.example.com/ai_images/img%d.png", s.uploads),
		AssetID: fmt.Sprintf("ai_images/img%d", s.uploads),
	}, nil
}

func (s *stubStore) Delete(ctx context.Context, assetID string) error {
	s.deletes++
	s.deleted = append(s.deleted, assetID)
	return s.deleteErr
}

// memoryRepo is an in-memory PostRepository with call counters.
type memoryRepo struct {
	inserts   int
	deletes   int
	insertErr error
	posts     map[string]models.Post
	events    *[]string
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{posts: make(map[string]models.Post)}
}

func (r *memoryRepo) Insert(ctx context.Context, post models.Post) (*models.Post, error) {
	r.inserts++
	if r.events != nil {
		*r.events = append(*r.events, "insert")
	}
	if r.insertErr != nil {
		return nil, r.insertErr
	}
	post.ID = primitive.NewObjectID()
	r.posts[post.ID.Hex()] = post
	return &post, nil
}

func (r *memoryRepo) FindAll(ctx context.Context) ([]models.Post, error) {
	out := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryRepo) FindByID(ctx context.Context, id string) (*models.Post, error) {
	p, ok := r.posts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &p, nil
}

func (r *memoryRepo) DeleteByID(ctx context.Context, id string) error {
	r.deletes++
	if _, ok := r.posts[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.posts, id)
	return nil
}

func newTestService() (*GalleryService, *memoryRepo, *stubStore) {
	repo := newMemoryRepo()
	store := &stubStore{}
	return NewGalleryService(repo, store, "ai_images"), repo, store
}

func TestCreatePostValidation(t *testing.T) {
	cases := []struct {
		name             string
		n, prompt, photo string
	}{
		{"empty name", "", "a red fox", "data"},
		{"empty prompt", "alice", "", "data"},
		{"empty photo", "alice", "a red fox", ""},
		{"all empty", "", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc, repo, store := newTestService()

			_, err := svc.CreatePost(context.Background(), tc.n, tc.prompt, tc.photo)
			assert.ErrorIs(t, err, ErrInvalidArgument)
			assert.Equal(t, 0, store.uploads, "no upload for invalid input")
			assert.Equal(t, 0, repo.inserts, "no insert for invalid input")
		})
	}
}

func TestCreatePostUploadsBeforeInsert(t *testing.T) {
	svc, repo, store := newTestService()
	events := []string{}
	repo.events = &events
	store.events = &events

	post, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.NoError(t, err)

	assert.Equal(t, []string{"upload", "insert"}, events)
	assert.False(t, post.ID.IsZero())
	assert.Equal(t, "alice", post.Name)
	assert.Equal(t, "a red fox", post.Prompt)
	assert.NotEmpty(t, post.Photo)
	assert.NotEmpty(t, post.AssetID)
}

func TestCreatePostUploadFailureSkipsInsert(t *testing.T) {
	svc, repo, store := newTestService()
	store.uploadErr = errors.New("quota exceeded")

	_, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, 0, repo.inserts, "insert must never run after a failed upload")
}

func TestCreatePostInsertFailure(t *testing.T) {
	svc, repo, store := newTestService()
	repo.insertErr = errors.New("write concern error")

	_, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.Error(t, err)
	// The upload happened before the insert failed; the asset is orphaned.
	assert.Equal(t, 1, store.uploads)
}

func TestDeletePostNotFound(t *testing.T) {
	svc, repo, store := newTestService()

	_, err := svc.DeletePost(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 0, store.deletes)
	assert.Equal(t, 0, repo.deletes)
}

func TestDeletePostRecordDeleteIsUnconditional(t *testing.T) {
	svc, repo, store := newTestService()

	post, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.NoError(t, err)

	store.deleteErr = errors.New("asset service unavailable")

	warning, err := svc.DeletePost(context.Background(), post.ID.Hex())
	require.NoError(t, err, "record deletion proceeds despite the asset failure")
	assert.NotEmpty(t, warning)
	assert.Contains(t, warning, "asset service unavailable")
	assert.Equal(t, 1, repo.deletes)
	assert.Empty(t, repo.posts)
}

func TestDeletePostUsesStoredAssetID(t *testing.T) {
	svc, _, store := newTestService()

	post, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.NoError(t, err)

	_, err = svc.DeletePost(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, post.AssetID, store.deleted[0])
}

func TestDeletePostDerivesAssetIDForLegacyRecords(t *testing.T) {
	svc, repo, store := newTestService()

	// A record persisted before assetId existed.
	legacy := models.Post{
		ID:     primitive.NewObjectID(),
		Name:   "bob",
		Prompt: "old prompt",
		Photo:  "https://images.example.com/v123/ai_images/abc123.png",
	}
	repo.posts[legacy.ID.Hex()] = legacy

	_, err := svc.DeletePost(context.Background(), legacy.ID.Hex())
	require.NoError(t, err)
	require.Len(t, store.deleted, 1)
	assert.Equal(t, "ai_images/abc123", store.deleted[0])
}

func TestDeletePostTwice(t *testing.T) {
	svc, repo, store := newTestService()

	post, err := svc.CreatePost(context.Background(), "alice", "a red fox", "base64data")
	require.NoError(t, err)

	warning, err := svc.DeletePost(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	assert.Empty(t, warning)

	_, err = svc.DeletePost(context.Background(), post.ID.Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Equal(t, 1, store.deletes, "no second asset deletion")
	assert.Equal(t, 1, repo.deletes)
}

func TestListPostsReflectsCreatesAndDeletes(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	a, err := svc.CreatePost(ctx, "alice", "a red fox", "d1")
	require.NoError(t, err)
	b, err := svc.CreatePost(ctx, "bob", "a blue whale", "d2")
	require.NoError(t, err)
	c, err := svc.CreatePost(ctx, "carol", "a green hill", "d3")
	require.NoError(t, err)

	_, err = svc.DeletePost(ctx, b.ID.Hex())
	require.NoError(t, err)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)

	ids := make(map[string]bool)
	for _, p := range posts {
		ids[p.ID.Hex()] = true
	}
	assert.Len(t, posts, 2)
	assert.True(t, ids[a.ID.Hex()])
	assert.True(t, ids[c.ID.Hex()])
	assert.False(t, ids[b.ID.Hex()])
}

func TestGetPost(t *testing.T) {
	svc, _, _ := newTestService()

	post, err := svc.CreatePost(context.Background(), "alice", "a red fox", "d1")
	require.NoError(t, err)

	got, err := svc.GetPost(context.Background(), post.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, post.ID, got.ID)

	_, err = svc.GetPost(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
