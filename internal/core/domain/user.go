package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUserNotFound = errors.New("user not found")
var ErrInvalidDate = errors.New("invalid date")
var ErrInvalidLimit = errors.New("invalid limit")

// User is an account that exercises are logged against. Usernames are not
// unique; the ObjectID is the only identity.
type User struct {
	ID       primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Username string             `json:"username" bson:"username"`
}
