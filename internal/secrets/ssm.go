package secrets

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/aws/aws-sdk-go-v2/service/ssm/types"

	"github.com/shorturl-platform/userservice/internal/logger"
)

// Parameter Store paths of the secrets consumed by the user service. The
// naming follows the platform-wide /shortUrl/<service>/<parameter> scheme.
const (
	paramAdminUsername    = "/shortUrl/users/adminUsername"
	paramAdminPassword    = "/shortUrl/users/adminPassword"
	paramJWTSecretKey     = "/shortUrl/users/jwtSecretKey"
	paramJWTMinutesToLive = "/shortUrl/users/jwtMinutesToLive"
	paramTableName        = "/shortUrl/users/tableName"
)

// ssmProvider is the Parameter Store-backed implementation of Provider.
// Parameter values are immutable for the lifetime of the process except the
// admin password, so each one is fetched once and cached under a mutex.
type ssmProvider struct {
	client *ssm.Client
	logger *logger.Logger

	mu    sync.Mutex
	cache map[string]string
}

// NewSSMProvider constructs a Provider reading from the AWS SSM Parameter
// Store through the given client.
func NewSSMProvider(client *ssm.Client, logger *logger.Logger) *ssmProvider {
	logger.Debug().Msg("creating ssm secrets provider")
	return &ssmProvider{
		client: client,
		logger: logger,
		cache:  make(map[string]string),
	}
}

func (p *ssmProvider) AdminUsername(ctx context.Context) (string, error) {
	return p.parameter(ctx, paramAdminUsername)
}

func (p *ssmProvider) AdminPassword(ctx context.Context) (string, error) {
	return p.parameter(ctx, paramAdminPassword)
}

func (p *ssmProvider) JWTSecret(ctx context.Context) (string, error) {
	return p.parameter(ctx, paramJWTSecretKey)
}

func (p *ssmProvider) JWTLifetime(ctx context.Context) (time.Duration, error) {
	raw, err := p.parameter(ctx, paramJWTMinutesToLive)
	if err != nil {
		return 0, err
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s value %q: %w", paramJWTMinutesToLive, raw, err)
	}

	return time.Duration(minutes) * time.Minute, nil
}

func (p *ssmProvider) TableName(ctx context.Context) (string, error) {
	return p.parameter(ctx, paramTableName)
}

// SetAdminPassword overwrites the stored administrator password and refreshes
// the local cache so later reads observe the new value immediately.
func (p *ssmProvider) SetAdminPassword(ctx context.Context, password string) error {
	log := logger.FromContext(ctx)

	_, err := p.client.PutParameter(ctx, &ssm.PutParameterInput{
		Name:      aws.String(paramAdminPassword),
		Value:     aws.String(password),
		Type:      types.ParameterTypeSecureString,
		Overwrite: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Msg("error writing admin password parameter")
		return fmt.Errorf("error writing parameter %s: %w", paramAdminPassword, err)
	}

	p.mu.Lock()
	p.cache[paramAdminPassword] = password
	p.mu.Unlock()

	return nil
}

func (p *ssmProvider) parameter(ctx context.Context, name string) (string, error) {
	p.mu.Lock()
	if value, ok := p.cache[name]; ok {
		p.mu.Unlock()
		return value, nil
	}
	p.mu.Unlock()

	out, err := p.client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		var notFound *types.ParameterNotFound
		if errors.As(err, &notFound) {
			return "", fmt.Errorf("%w: %s", ErrParameterNotFound, name)
		}
		return "", fmt.Errorf("error reading parameter %s: %w", name, err)
	}

	value := aws.ToString(out.Parameter.Value)

	p.mu.Lock()
	p.cache[name] = value
	p.mu.Unlock()

	return value, nil
}
