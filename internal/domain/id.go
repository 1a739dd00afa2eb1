package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ErrInvalidID indicates a string is not shaped like a store object id.
var ErrInvalidID = errors.New("domain: invalid object id")

// ParseID converts a hex string into an object id. It is a format check only;
// a well-formed id may reference no stored entity.
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.ObjectID{}, ErrInvalidID
	}
	return id, nil
}

// ValidID reports whether s is shaped like a store object id.
func ValidID(s string) bool {
	_, err := ParseID(s)
	return err == nil
}
