package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// User is an authenticated identity. The password hash never serializes to
// JSON.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Email        string        `bson:"email" json:"email"`
	PasswordHash []byte        `bson:"password" json:"-"`
	Name         string        `bson:"name" json:"name"`
}
