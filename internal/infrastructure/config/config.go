package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// UseSSM forces the remote parameter store on even in development.
	UseSSM bool `env:"USE_SSM, default=false"`

	Mongo MongoConfig
	Redis RedisConfig
	JWT   JWTConfig
	Admin AdminConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=fcg_users"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// JWTConfig holds the locally configured signing secrets. In production-like
// environments these are normally resolved remotely instead; see the secrets
// package for the resolution order.
type JWTConfig struct {
	Key      string `env:"JWT_KEY"`
	Issuer   string `env:"JWT_ISSUER"`
	Audience string `env:"JWT_AUDIENCE"`
}

// AdminConfig configures the seeded default administrator.
type AdminConfig struct {
	Email    string `env:"ADMIN_EMAIL,    default=admin@fcg.com"`
	Password string `env:"ADMIN_PASSWORD, default=Senha@123"`
}

// IsDevelopment reports whether the service runs in a local/development
// context, which flips the secret-resolution priority to local config.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
