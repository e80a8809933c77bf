// Package dto holds the request/response payloads that mediate between the
// outside world and entities. Each payload implements the capability roles
// its operations need (Creatable, Updatable, Filterable, Projectable) and
// validates itself with the rules in internal/core/validation.
package dto

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/validation"
	"github.com/fcg-platform/users-svc/internal/security"
)

// UserProjection is the public read-shape of a user: never the password
// digest, never the role.
type UserProjection struct {
	ID    primitive.ObjectID `bson:"_id" json:"id"`
	Name  string             `bson:"name" json:"name"`
	Email string             `bson:"email" json:"email"`
}

// ProjectionDocument derives the read-shape from the type itself, so it is
// valid on a zero value.
func (UserProjection) ProjectionDocument() bson.M {
	return bson.M{"_id": 1, "name": 1, "email": 1}
}

// CreateUserDTO creates a standard user. The password is digested at entity
// construction time; the plaintext never reaches the repository.
type CreateUserDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (d CreateUserDTO) ToEntity() domain.User {
	return domain.User{
		Name:     d.Name,
		Email:    d.Email,
		Password: security.Digest(d.Password),
		Role:     domain.RoleUser,
	}
}

// Validate applies the registration rules, accumulating every violation.
func (d CreateUserDTO) Validate() validation.Result {
	var result validation.Result

	if d.Name == "" {
		result.AddError("name is required")
	}

	if d.Email == "" {
		result.AddError("email is required")
	} else if !validation.IsValidEmail(d.Email) {
		result.AddError("email format is invalid")
	}

	if d.Password == "" {
		result.AddError("password is required")
	} else if !validation.IsSecurePassword(d.Password) {
		result.AddError("weak password: must be at least 8 characters including letters, digits and symbols")
	}

	return result
}

// CreateUserAdminDTO creates an administrator. Same payload and rules as
// CreateUserDTO; only the assigned role differs.
type CreateUserAdminDTO struct {
	CreateUserDTO
}

func (d CreateUserAdminDTO) ToEntity() domain.User {
	entity := d.CreateUserDTO.ToEntity()
	entity.Role = domain.RoleAdmin
	return entity
}

// UpdateUserDTO is a partial patch: empty fields are left untouched, not
// reset. A new password is digested before it is written. The plaintext is
// excluded from bson so audit payloads built from this value never carry it.
type UpdateUserDTO struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Password string `json:"password,omitempty" bson:"-"`
}

func (d UpdateUserDTO) UpdateDocument() bson.M {
	set := bson.M{}
	if d.Name != "" {
		set["name"] = d.Name
	}
	if d.Email != "" {
		set["email"] = d.Email
	}
	if d.Password != "" {
		set["password"] = security.Digest(d.Password)
	}
	if len(set) == 0 {
		return bson.M{}
	}
	return bson.M{"$set": set}
}

// FilterUserDTO matches users on whichever fields are set; all fields empty
// matches everything.
type FilterUserDTO struct {
	ID    primitive.ObjectID `json:"id,omitempty" bson:"id,omitempty"`
	Name  string             `json:"name,omitempty" bson:"name,omitempty"`
	Email string             `json:"email,omitempty" bson:"email,omitempty"`
}

func (d FilterUserDTO) FilterDocument() bson.M {
	filter := bson.M{}
	if !d.ID.IsZero() {
		filter["_id"] = d.ID
	}
	if d.Name != "" {
		filter["name"] = d.Name
	}
	if d.Email != "" {
		filter["email"] = d.Email
	}
	return filter
}
