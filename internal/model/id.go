package model

import "go.mongodb.org/mongo-driver/v2/bson"

// ParseID checks that s is a well-formed store identifier (24 hex characters).
// It says nothing about whether a record with that id exists.
func ParseID(s string) (bson.ObjectID, error) {
	id, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, NewValidationError("invalid id: " + s)
	}
	return id, nil
}

// CanonicalID validates s like ParseID and returns it in the lowercase hex form
// every store keys records by.
func CanonicalID(s string) (string, error) {
	id, err := ParseID(s)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

// NewID returns a fresh identifier in its string form.
func NewID() string {
	return bson.NewObjectID().Hex()
}
