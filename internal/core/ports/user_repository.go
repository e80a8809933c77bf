package ports

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
)

// UserRepository is the typed binding of the generic repository to the User
// entity. Lookups that miss return (nil, nil); absence is a result, not an
// error, so callers decide how it maps outward.
type UserRepository interface {
	Create(ctx context.Context, in Creatable[domain.User]) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error)
	GetAll(ctx context.Context) ([]dto.UserProjection, error)
	Find(ctx context.Context, filter Filterable[domain.User]) ([]dto.UserProjection, error)
	// FindOne serves ad hoc single-record lookups where no DTO role fits,
	// such as "find the administrator" or the pre-insert email check.
	FindOne(ctx context.Context, filter bson.M) (*domain.User, error)
	Update(ctx context.Context, id primitive.ObjectID, in Updatable[domain.User]) error
	// Delete is idempotent; deleting an absent id is not an error.
	Delete(ctx context.Context, id primitive.ObjectID) error
}
