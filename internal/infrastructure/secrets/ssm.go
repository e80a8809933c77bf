package secrets

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"
	"github.com/rs/zerolog"
)

// SSMSource fetches parameters from AWS SSM Parameter Store. A missing
// parameter or denied access both signal "no value"; the resolver decides
// whether the chain as a whole fails.
type SSMSource struct {
	client *ssm.Client
	log    zerolog.Logger
}

func NewSSMSource(ctx context.Context, log zerolog.Logger) (*SSMSource, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SSMSource{client: ssm.NewFromConfig(cfg), log: log}, nil
}

func (s *SSMSource) Parameter(ctx context.Context, name string, decrypt bool) (string, bool) {
	out, err := s.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(decrypt),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if !errors.As(err, &notFound) {
			s.log.Warn().Err(err).Str("name", name).Msg("ssm parameter lookup failed")
		}
		return "", false
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return "", false
	}
	return *out.Parameter.Value, true
}
