package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Post pairs a hosted image URL with its creator name and the prompt that
// produced it. AssetID is the image store's identifier for the hosted file,
// captured at upload time so deletion does not have to parse the URL.
type Post struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Prompt    string             `bson:"prompt" json:"prompt"`
	Photo     string             `bson:"photo" json:"photo"`
	AssetID   string             `bson:"assetId,omitempty" json:"assetId,omitempty"`
	CreatedAt int64              `bson:"createdAt" json:"createdAt"`
}
