package ports

import "context"

// JWTSecrets holds the three values token issuance and verification need.
type JWTSecrets struct {
	Key      string
	Issuer   string
	Audience string
}

// SecretResolver produces the signing secrets from a prioritized source
// chain. Resolution failing across every source is fatal at startup or first
// use, not a per-request condition.
type SecretResolver interface {
	Resolve(ctx context.Context) (JWTSecrets, error)
}

// ParameterSource fetches one named parameter from a remote store. Absent
// parameters and denied access both report ok=false; within the resolution
// chain "no value" is an answer, not a failure.
type ParameterSource interface {
	Parameter(ctx context.Context, name string, decrypt bool) (value string, ok bool)
}
