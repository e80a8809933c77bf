package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
)

// UserService exposes user administration. The audited implementation wraps
// the plain one and appends a DomainEvent per operation, so the audit concern
// stays out of the business rules.
type UserService interface {
	ListAll(ctx context.Context) ([]dto.UserProjection, error)
	// GetByID returns (nil, nil) when no user has the given id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error)
	Find(ctx context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error)
	// Create validates first; on failure no repository call is made. On
	// success the stored record is read back so the returned projection
	// reflects the generated id.
	Create(ctx context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error)
	CreateAdmin(ctx context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error)
	Update(ctx context.Context, id primitive.ObjectID, in dto.UpdateUserDTO) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// GetAdmin returns the first administrator on record, or (nil, nil).
	GetAdmin(ctx context.Context) (*domain.User, error)
}
