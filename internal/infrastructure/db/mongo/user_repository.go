package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
)

// Collection name matches the entity name, the convention the platform's
// other services already rely on.
const usersCollection = "User"

// UserRepository binds the generic repository to the User entity and the
// public user projection.
type UserRepository struct {
	base *BaseRepository[domain.User]
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{base: NewBaseRepository[domain.User](db, usersCollection)}
}

func (r *UserRepository) Create(ctx context.Context, in ports.Creatable[domain.User]) (*domain.User, error) {
	return r.base.Create(ctx, in)
}

func (r *UserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error) {
	return GetByID[domain.User, dto.UserProjection](ctx, r.base, id)
}

func (r *UserRepository) GetAll(ctx context.Context) ([]dto.UserProjection, error) {
	return GetAll[domain.User, dto.UserProjection](ctx, r.base)
}

func (r *UserRepository) Find(ctx context.Context, filter ports.Filterable[domain.User]) ([]dto.UserProjection, error) {
	return Find[domain.User, dto.UserProjection](ctx, r.base, filter)
}

func (r *UserRepository) FindOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	return r.base.FindOne(ctx, filter)
}

func (r *UserRepository) Update(ctx context.Context, id primitive.ObjectID, in ports.Updatable[domain.User]) error {
	return r.base.Update(ctx, id, in)
}

func (r *UserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	return r.base.Delete(ctx, id)
}
