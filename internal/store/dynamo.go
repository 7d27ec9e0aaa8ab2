// Package store implements the credential store: conditional-write access to
// user account records in DynamoDB, an in-memory equivalent for tests and
// local runs, and the bounded read-modify-write combinator built on top of
// the compare-and-swap primitive.
//
// The user table must be strongly consistent, since two users must never be
// able to sign up with the same username. DynamoDB's native conditional-write
// capability is the sole consistency boundary: there is no in-process
// locking, and concurrent writers to different usernames never contend.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/shorturl-platform/userservice/internal/logger"
	"github.com/shorturl-platform/userservice/models"
)

// tableWaitTimeout bounds how long Initialize waits for DynamoDB to finish
// creating or deleting the user table.
const tableWaitTimeout = 2 * time.Minute

// dynamoUserStore is the DynamoDB-backed implementation of UserStore and
// Initializer. Each item in the table is one account record with `username`
// as the partition key; the `version` attribute drives optimistic locking.
type dynamoUserStore struct {
	client *dynamodb.Client
	table  string
	logger *logger.Logger
}

// NewDynamoUserStore constructs a UserStore backed by the given DynamoDB
// client and table name.
func NewDynamoUserStore(client *dynamodb.Client, table string, logger *logger.Logger) *dynamoUserStore {
	logger.Debug().Str("table", table).Msg("creating dynamodb user store")
	return &dynamoUserStore{
		client: client,
		table:  table,
		logger: logger,
	}
}

// InsertIfAbsent writes the record with an attribute_not_exists condition on
// the partition key, so exactly one of two racing signups for the same
// username can ever succeed. The stored record starts at version 1.
func (s *dynamoUserStore) InsertIfAbsent(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	user.Version = 1
	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return fmt.Errorf("error marshaling user item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(username)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrUserAlreadyExists
		}
		log.Err(err).Str("username", user.Username).Msg("conditional put failed unexpectedly")
		return fmt.Errorf("error inserting user %q: %w", user.Username, err)
	}

	return nil
}

// Get reads the record for username with a strongly consistent read. An
// eventually consistent read could observe a stale version and doom the
// following compare-and-swap.
func (s *dynamoUserStore) Get(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.table),
		Key:            usernameKey(username),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("get item failed")
		return models.User{}, fmt.Errorf("error reading user %q: %w", username, err)
	}
	if len(out.Item) == 0 {
		return models.User{}, ErrUserNotFound
	}

	var user models.User
	if err := attributevalue.UnmarshalMap(out.Item, &user); err != nil {
		return models.User{}, fmt.Errorf("error unmarshaling user item: %w", err)
	}

	return user, nil
}

// ScanAll streams every record in the table through the scan paginator.
// Order is unspecified. Only the administrator-gated listing and bulk
// deletion paths call this.
func (s *dynamoUserStore) ScanAll(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	var users []models.User
	paginator := dynamodb.NewScanPaginator(s.client, &dynamodb.ScanInput{
		TableName:      aws.String(s.table),
		ConsistentRead: aws.Bool(true),
	})

	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			log.Err(err).Msg("scan page failed")
			return nil, fmt.Errorf("error scanning user table: %w", err)
		}

		var pageUsers []models.User
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &pageUsers); err != nil {
			return nil, fmt.Errorf("error unmarshaling scanned users: %w", err)
		}
		users = append(users, pageUsers...)
	}

	return users, nil
}

// CompareAndSwapUpdate writes the record conditioned on the stored version
// still matching the version the caller read. The written item carries the
// incremented version, which becomes the new authoritative counter.
func (s *dynamoUserStore) CompareAndSwapUpdate(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	expected := user.Version
	user.Version = expected + 1

	item, err := attributevalue.MarshalMap(user)
	if err != nil {
		return models.User{}, fmt.Errorf("error marshaling user item: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.table),
		Item:                item,
		ConditionExpression: aws.String("version = :expected"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":expected": &types.AttributeValueMemberN{Value: strconv.FormatInt(expected, 10)},
		},
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			// Someone updated the record after we read it; the caller's copy
			// is stale and the whole read-modify-write cycle must rerun.
			return models.User{}, ErrVersionConflict
		}
		log.Err(err).Str("username", user.Username).Msg("conditional update failed unexpectedly")
		return models.User{}, fmt.Errorf("error updating user %q: %w", user.Username, err)
	}

	return user, nil
}

// Delete removes the record, conditioned on it still existing so that a
// double delete surfaces as ErrUserNotFound.
func (s *dynamoUserStore) Delete(ctx context.Context, user models.User) error {
	log := logger.FromContext(ctx)

	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.table),
		Key:                 usernameKey(user.Username),
		ConditionExpression: aws.String("attribute_exists(username)"),
	})
	if err != nil {
		var conditionFailed *types.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrUserNotFound
		}
		log.Err(err).Str("username", user.Username).Msg("delete item failed")
		return fmt.Errorf("error deleting user %q: %w", user.Username, err)
	}

	return nil
}

// Initialize deletes the user table if it exists, recreates it, and blocks
// until DynamoDB reports the new table active. It runs only on the trusted
// bootstrap path, so synchronous waiting is acceptable here.
func (s *dynamoUserStore) Initialize(ctx context.Context) error {
	exists, err := s.tableExists(ctx)
	if err != nil {
		return err
	}

	if exists {
		s.logger.Info().Str("table", s.table).Msg("deleting user table")
		if _, err := s.client.DeleteTable(ctx, &dynamodb.DeleteTableInput{
			TableName: aws.String(s.table),
		}); err != nil {
			return fmt.Errorf("error deleting table %q: %w", s.table, err)
		}

		waiter := dynamodb.NewTableNotExistsWaiter(s.client)
		if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
			TableName: aws.String(s.table),
		}, tableWaitTimeout); err != nil {
			return fmt.Errorf("error waiting for table %q deletion: %w", s.table, err)
		}
	}

	s.logger.Info().Str("table", s.table).Msg("creating user table")
	_, err = s.client.CreateTable(ctx, &dynamodb.CreateTableInput{
		TableName: aws.String(s.table),
		AttributeDefinitions: []types.AttributeDefinition{{
			AttributeName: aws.String("username"),
			AttributeType: types.ScalarAttributeTypeS,
		}},
		KeySchema: []types.KeySchemaElement{{
			AttributeName: aws.String("username"),
			KeyType:       types.KeyTypeHash,
		}},
		BillingMode: types.BillingModePayPerRequest,
	})
	if err != nil {
		return fmt.Errorf("error creating table %q: %w", s.table, err)
	}

	waiter := dynamodb.NewTableExistsWaiter(s.client)
	if err := waiter.Wait(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	}, tableWaitTimeout); err != nil {
		return fmt.Errorf("error waiting for table %q creation: %w", s.table, err)
	}

	return nil
}

func (s *dynamoUserStore) tableExists(ctx context.Context) (bool, error) {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.table),
	})
	if err != nil {
		var notFound *types.ResourceNotFoundException
		if errors.As(err, &notFound) {
			return false, nil
		}
		return false, fmt.Errorf("error describing table %q: %w", s.table, err)
	}
	return true, nil
}

func usernameKey(username string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"username": &types.AttributeValueMemberS{Value: username},
	}
}
