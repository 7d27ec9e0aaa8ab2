package main

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"

	"github.com/shorturl-platform/userservice/internal/config"
	handlerhttp "github.com/shorturl-platform/userservice/internal/handler/http"
	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/internal/secrets"
	"github.com/shorturl-platform/userservice/internal/server"
	"github.com/shorturl-platform/userservice/internal/service"
	"github.com/shorturl-platform/userservice/internal/store"
	"github.com/shorturl-platform/userservice/internal/token"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger("shorturl-users", "").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewLogger("shorturl-users", cfg.App.LogLevel)
	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	var awsCfg aws.Config
	if cfg.Storage.Engine == config.EngineDynamoDB || cfg.Secrets.Mode == config.SecretsSSM {
		awsCfg, err = loadAWSConfig(ctx, cfg.Storage.DynamoDB)
		if err != nil {
			log.Fatal().Err(err).Msg("error loading AWS configuration")
		}
	}

	var secretsProvider secrets.Provider
	switch cfg.Secrets.Mode {
	case config.SecretsStatic:
		secretsProvider = secrets.NewStaticProvider(
			cfg.Secrets.Static.AdminUsername,
			cfg.Secrets.Static.AdminPassword,
			cfg.Secrets.Static.JWTSecretKey,
			time.Duration(cfg.Secrets.Static.JWTMinutesToLive)*time.Minute,
			cfg.Secrets.Static.TableName,
		)
	default:
		secretsProvider = secrets.NewSSMProvider(ssm.NewFromConfig(awsCfg), log)
	}

	tableName, err := secretsProvider.TableName(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading table name")
	}

	var users store.UserStore
	var initializer store.Initializer
	switch cfg.Storage.Engine {
	case config.EngineMemory:
		memStore := store.NewMemoryUserStore()
		users, initializer = memStore, memStore
	default:
		dynamoClient := dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
			if cfg.Storage.DynamoDB.Endpoint != "" {
				o.BaseEndpoint = aws.String(cfg.Storage.DynamoDB.Endpoint)
			}
		})
		dynamoStore := store.NewDynamoUserStore(dynamoClient, tableName, log)
		users, initializer = dynamoStore, dynamoStore
	}

	jwtSecret, err := secretsProvider.JWTSecret(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading JWT secret")
	}
	jwtLifetime, err := secretsProvider.JWTLifetime(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("error reading JWT lifetime")
	}
	tokens := token.NewManager(jwtSecret, jwtLifetime)

	services := service.NewServices(
		service.NewAuthService(users, initializer, secretsProvider, tokens, log),
	)

	handler := handlerhttp.NewHandler(services, tokens, secretsProvider, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// loadAWSConfig resolves the AWS SDK configuration. When an endpoint
// override points the service at a local DynamoDB emulator, dummy static
// credentials are supplied so the SDK's credential chain is not consulted.
func loadAWSConfig(ctx context.Context, dynamoCfg config.DynamoDB) (aws.Config, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if dynamoCfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(dynamoCfg.Region))
	}
	if dynamoCfg.Endpoint != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider("local", "local", ""),
		))
	}

	return awsconfig.LoadDefaultConfig(ctx, opts...)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
