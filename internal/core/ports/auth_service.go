package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/dto"
)

// AuthService implements self-service registration and login. Both flows are
// linear pipelines with early exits: validation, lookup, then the effect.
type AuthService interface {
	// Register creates an account and returns the generated id.
	Register(ctx context.Context, in dto.RegisterUserDTO) (primitive.ObjectID, error)
	// Login verifies the credentials and issues a signed session token.
	Login(ctx context.Context, in dto.LoginUserDTO) (*dto.AuthenticationToken, error)
}
