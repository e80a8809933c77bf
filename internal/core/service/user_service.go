package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/validation"
)

// UserService implements the plain user CRUD orchestration with no audit
// concern; wrap it with NewAuditedUserService to get the event trail.
type UserService struct {
	users ports.UserRepository
	log   zerolog.Logger
}

func NewUserService(users ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{users: users, log: log}
}

func (s *UserService) ListAll(ctx context.Context) ([]dto.UserProjection, error) {
	return s.users.GetAll(ctx)
}

func (s *UserService) GetByID(ctx context.Context, id primitive.ObjectID) (*dto.UserProjection, error) {
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Find(ctx context.Context, filter dto.FilterUserDTO) ([]dto.UserProjection, error) {
	return s.users.Find(ctx, filter)
}

func (s *UserService) Create(ctx context.Context, in dto.CreateUserDTO) (*dto.UserProjection, error) {
	return s.create(ctx, in.Validate(), in)
}

func (s *UserService) CreateAdmin(ctx context.Context, in dto.CreateUserAdminDTO) (*dto.UserProjection, error) {
	return s.create(ctx, in.Validate(), in)
}

// create validates, inserts, and reads the stored record back. The insert and
// the read-back are two separate operations; there is no transaction tying
// them together.
func (s *UserService) create(ctx context.Context, result validation.Result, in ports.Creatable[domain.User]) (*dto.UserProjection, error) {
	if result.HasError() {
		return nil, validation.NewError(result)
	}

	entity, err := s.users.Create(ctx, in)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	projected, err := s.users.GetByID(ctx, entity.ID)
	if err != nil {
		return nil, fmt.Errorf("create user: read back: %w", err)
	}
	if projected == nil {
		// The record can vanish between the insert and the read-back, for
		// example through a concurrent delete. The insert still happened,
		// so serve the projection from the inserted entity.
		projected = &dto.UserProjection{ID: entity.ID, Name: entity.Name, Email: entity.Email}
	}

	s.log.Info().Str("user_id", entity.ID.Hex()).Str("role", string(entity.Role)).Msg("user created")
	return projected, nil
}

func (s *UserService) Update(ctx context.Context, id primitive.ObjectID, in dto.UpdateUserDTO) error {
	if err := s.users.Update(ctx, id, in); err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	return nil
}

func (s *UserService) Delete(ctx context.Context, id primitive.ObjectID) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) GetAdmin(ctx context.Context) (*domain.User, error) {
	return s.users.FindOne(ctx, bson.M{"role": domain.RoleAdmin})
}
