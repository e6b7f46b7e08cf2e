package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash *string            `bson:"passwordHash,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	AuthProvider string             `bson:"authProvider" json:"authProvider"` // "email" or "google"
	CreatedAt    int64              `bson:"createdAt" json:"createdAt"`
}
