package domain

import (
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the access level assigned to a user. Exactly one role is set at all
// times; new users default to RoleUser.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrInvalidLogin is returned when the login email matches no account.
	// Deliberately vague so responses do not reveal which emails exist.
	ErrInvalidLogin = errors.New("invalid login")
	// ErrInvalidCredentials is returned when the account exists but the
	// password digest does not match.
	ErrInvalidCredentials = errors.New("user could not be authenticated, check your information")
	// ErrSecretsIncomplete reports that no source produced a value for at
	// least one JWT secret field. A configuration fault, fatal at startup.
	ErrSecretsIncomplete = errors.New("jwt secrets incomplete")
)

// User is the identity record persisted in the document store. Password holds
// the irreversible digest, never the plaintext. Email is a business key whose
// uniqueness is enforced only by a pre-insert lookup, not by an index.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Email    string             `bson:"email" json:"email"`
	Password string             `bson:"password" json:"-"`
	Role     Role               `bson:"role" json:"role"`
}
