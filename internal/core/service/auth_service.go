package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/dto"
	"github.com/fcg-platform/users-svc/internal/core/ports"
	"github.com/fcg-platform/users-svc/internal/core/validation"
	"github.com/fcg-platform/users-svc/internal/security"
)

// tokenTTL is the fixed lifetime of issued session tokens.
const tokenTTL = 8 * time.Hour

// AuthService implements registration and login against the user collection.
type AuthService struct {
	users   ports.UserRepository
	secrets ports.SecretResolver
	log     zerolog.Logger
}

func NewAuthService(users ports.UserRepository, secrets ports.SecretResolver, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, secrets: secrets, log: log}
}

// Register validates the payload, rejects already-registered emails, and
// creates the account. The email check and the insert are not atomic; a race
// between concurrent registrations can admit duplicates (accepted gap).
func (s *AuthService) Register(ctx context.Context, in dto.RegisterUserDTO) (primitive.ObjectID, error) {
	if result := in.Validate(); result.HasError() {
		return primitive.NilObjectID, validation.NewError(result)
	}

	existing, err := s.users.FindOne(ctx, bson.M{"email": in.Email})
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("register: lookup email: %w", err)
	}
	if existing != nil {
		return primitive.NilObjectID, domain.ErrEmailTaken
	}

	created, err := s.users.Create(ctx, in)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("register: %w", err)
	}

	s.log.Info().Str("user_id", created.ID.Hex()).Msg("user registered")
	return created.ID, nil
}

// Login validates the payload, looks the account up by email, compares the
// password digest, and issues a token. An unknown email and a wrong password
// fail differently on purpose: the former is a generic bad request, the
// latter an authentication failure.
func (s *AuthService) Login(ctx context.Context, in dto.LoginUserDTO) (*dto.AuthenticationToken, error) {
	if result := in.Validate(); result.HasError() {
		return nil, validation.NewError(result)
	}

	user, err := s.users.FindOne(ctx, bson.M{"email": in.Email})
	if err != nil {
		return nil, fmt.Errorf("login: lookup email: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidLogin
	}

	if !security.Verify(in.Password, user.Password) {
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.issueToken(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.Hex()).Msg("user logged in")
	return token, nil
}

// issueToken signs an HS256 token carrying the user's public summary. The id
// and role claims are duplicated under a canonical name and a short alias for
// compatibility with the platform's existing consumers.
func (s *AuthService) issueToken(ctx context.Context, user *domain.User) (*dto.AuthenticationToken, error) {
	secrets, err := s.secrets.Resolve(ctx)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	now := time.Now().UTC()
	expiresOn := now.Add(tokenTTL)

	claims := jwt.MapClaims{
		"sub":    user.ID.Hex(),
		"UserId": user.ID.Hex(),
		"userId": user.ID.Hex(),
		"name":   user.Name,
		"email":  user.Email,
		"Role":   string(user.Role),
		"role":   string(user.Role),
		"iss":    secrets.Issuer,
		"aud":    secrets.Audience,
		"iat":    now.Unix(),
		"exp":    expiresOn.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secrets.Key))
	if err != nil {
		return nil, fmt.Errorf("issue token: sign: %w", err)
	}

	return &dto.AuthenticationToken{
		Token:     signed,
		ExpiresOn: &expiresOn,
		UserInfo: &dto.UserProjection{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
