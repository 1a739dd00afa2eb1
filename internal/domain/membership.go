package domain

import "go.mongodb.org/mongo-driver/v2/bson"

// RoleAdmin is the role granted to an account's creator.
const RoleAdmin = "admin"

// Membership is a role-tagged edge between a user and an account. An account
// may carry memberships for additional users beyond its admin.
type Membership struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    bson.ObjectID `bson:"user_id" json:"user_id"`
	AccountID bson.ObjectID `bson:"account_id" json:"account_id"`
	Role      string        `bson:"role" json:"role"`
}
