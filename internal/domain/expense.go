package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Expense is a financial record scoped to one account. CreatedBy and
// AccountID are format-checked before persistence, never existence-checked.
type Expense struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string        `bson:"name" json:"name"`
	Amount    float64       `bson:"amount" json:"amount"`
	Date      time.Time     `bson:"date" json:"date"`
	CreatedBy bson.ObjectID `bson:"created_by" json:"created_by"`
	Type      string        `bson:"type" json:"type"`
	ImagePath string        `bson:"image_path,omitempty" json:"image_path,omitempty"`
	AccountID bson.ObjectID `bson:"account_id" json:"account_id"`
}
