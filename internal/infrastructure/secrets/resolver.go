// Package secrets resolves the JWT signing material from a prioritized
// source chain: remote parameter store first in production-like contexts,
// local configuration first in development, with the remote store as the
// final fallback either way. Each of the three fields resolves independently,
// so a partial mix of sources is fine.
package secrets

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/fcg-platform/users-svc/internal/core/domain"
	"github.com/fcg-platform/users-svc/internal/core/ports"
)

// Well-known parameter paths in the remote store. Only the signing key is
// stored encrypted.
const (
	pathKey      = "/fcg/JWT_SECRET"
	pathIssuer   = "/fcg/JWT_ISS"
	pathAudience = "/fcg/JWT_AUD"
)

// Resolver implements ports.SecretResolver over a remote ParameterSource and
// the local configuration values. A successful resolution is cached; the
// sources are not consulted again per request.
type Resolver struct {
	remote      ports.ParameterSource
	local       ports.JWTSecrets
	remoteFirst bool
	log         zerolog.Logger

	mu     sync.Mutex
	cached *ports.JWTSecrets
}

// NewResolver builds a Resolver. remote may be nil when the remote store is
// unavailable; remoteFirst should be true in any non-development context.
func NewResolver(remote ports.ParameterSource, local ports.JWTSecrets, remoteFirst bool, log zerolog.Logger) *Resolver {
	return &Resolver{remote: remote, local: local, remoteFirst: remoteFirst, log: log}
}

func (r *Resolver) Resolve(ctx context.Context) (ports.JWTSecrets, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached != nil {
		return *r.cached, nil
	}

	resolved := ports.JWTSecrets{
		Key:      r.field(ctx, pathKey, r.local.Key, true),
		Issuer:   r.field(ctx, pathIssuer, r.local.Issuer, false),
		Audience: r.field(ctx, pathAudience, r.local.Audience, false),
	}

	var missing []string
	if resolved.Key == "" {
		missing = append(missing, "key")
	}
	if resolved.Issuer == "" {
		missing = append(missing, "issuer")
	}
	if resolved.Audience == "" {
		missing = append(missing, "audience")
	}
	if len(missing) > 0 {
		return ports.JWTSecrets{}, fmt.Errorf("resolve jwt secrets: missing %v: %w", missing, domain.ErrSecretsIncomplete)
	}

	r.cached = &resolved
	return resolved, nil
}

// field walks the chain for a single value: remote (when primary), then
// local, then remote again as the last resort, so a locally-missing value can
// still be satisfied remotely. "No value" from a source just moves the chain
// along.
func (r *Resolver) field(ctx context.Context, path, local string, decrypt bool) string {
	if r.remoteFirst {
		if v := r.remoteValue(ctx, path, decrypt); v != "" {
			return v
		}
	}
	if local != "" {
		return local
	}
	return r.remoteValue(ctx, path, decrypt)
}

func (r *Resolver) remoteValue(ctx context.Context, path string, decrypt bool) string {
	if r.remote == nil {
		return ""
	}
	v, ok := r.remote.Parameter(ctx, path, decrypt)
	if !ok {
		r.log.Debug().Str("path", path).Msg("remote parameter not available")
		return ""
	}
	return v
}
