package repository

import (
	"context"
	"errors"
	"time"

	"dreamwall/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrNotFound is returned when no post matches the given id. A malformed id
// is treated the same way: the caller asked for a post that does not exist.
var ErrNotFound = errors.New("post not found")

// PostRepository is the document-store abstraction over Post records.
type PostRepository interface {
	Insert(ctx context.Context, post models.Post) (*models.Post, error)
	FindAll(ctx context.Context) ([]models.Post, error)
	FindByID(ctx context.Context, id string) (*models.Post, error)
	DeleteByID(ctx context.Context, id string) error
}

// MongoPostRepository implements PostRepository over a MongoDB collection.
type MongoPostRepository struct {
	coll *mongo.Collection
}

func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{coll: db.Collection("posts")}
}

func (r *MongoPostRepository) Insert(ctx context.Context, post models.Post) (*models.Post, error) {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if post.CreatedAt == 0 {
		post.CreatedAt = time.Now().Unix()
	}

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) FindAll(ctx context.Context) ([]models.Post, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	posts := make([]models.Post, 0)
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) FindByID(ctx context.Context, id string) (*models.Post, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	err = r.coll.FindOne(ctx, bson.M{"_id": objectID}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *MongoPostRepository) DeleteByID(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
