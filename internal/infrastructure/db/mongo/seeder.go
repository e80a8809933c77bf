package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/security"
)

// EnsureAdminUser inserts a default administrator when none exists, so a
// fresh deployment always has an account that can reach the admin-only
// endpoints. With empty credentials configured, seeding is skipped.
func EnsureAdminUser(ctx context.Context, db *mongo.Database, email, password string, log zerolog.Logger) error {
	if email == "" || password == "" {
		return nil
	}

	coll := db.Collection(usersCollection)

	err := coll.FindOne(ctx, bson.M{"role": domain.RoleAdmin}).Err()
	if err == nil {
		log.Debug().Msg("admin user already present, seeding skipped")
		return nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("seed admin: lookup: %w", err)
	}

	admin := domain.User{
		Name:     "admin",
		Email:    email,
		Password: security.Digest(password),
		Role:     domain.RoleAdmin,
	}
	if _, err := coll.InsertOne(ctx, admin); err != nil {
		return fmt.Errorf("seed admin: insert: %w", err)
	}

	log.Info().Str("email", email).Msg("default admin user created")
	return nil
}
