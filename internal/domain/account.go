package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// Account is a tenant grouping owned by one admin user.
type Account struct {
	ID      bson.ObjectID `bson:"_id,omitempty" json:"id"`
	AdminID bson.ObjectID `bson:"admin_id" json:"admin_id"`
}
