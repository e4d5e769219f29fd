package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/event-showcase-api/internal/config"
)

// TableAdmin is the subset of the DynamoDB client used to provision tables.
type TableAdmin interface {
	CreateTable(ctx context.Context, in *dynamodb.CreateTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.CreateTableOutput, error)
	UpdateTimeToLive(ctx context.Context, in *dynamodb.UpdateTimeToLiveInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateTimeToLiveOutput, error)
}

// Bootstrap creates the verification table keyed by email and turns on native
// TTL over expires_at. An existing table is left as is. A TTL failure is only
// logged: Get enforces expiry on its own.
func Bootstrap(ctx context.Context, client TableAdmin, tables config.DynamoTables) error {
	if tables.Verifications == "" {
		return errors.New("verification table name is empty")
	}
	created, err := createTable(ctx, client, verificationTable(tables.Verifications))
	if err != nil {
		return err
	}
	if created {
		slog.Info("created table", "table", tables.Verifications)
	}
	enableTTL(ctx, client, tables.Verifications, fieldExpiresAt)
	return nil
}

func verificationTable(name string) *dynamodb.CreateTableInput {
	return &dynamodb.CreateTableInput{
		TableName:   aws.String(name),
		BillingMode: types.BillingModePayPerRequest,
		AttributeDefinitions: []types.AttributeDefinition{
			{AttributeName: aws.String(fieldEmail), AttributeType: types.ScalarAttributeTypeS},
		},
		KeySchema: []types.KeySchemaElement{
			{AttributeName: aws.String(fieldEmail), KeyType: types.KeyTypeHash},
		},
	}
}

// createTable reports false when the table already exists.
func createTable(ctx context.Context, client TableAdmin, input *dynamodb.CreateTableInput) (bool, error) {
	_, err := client.CreateTable(ctx, input)
	var inUse *types.ResourceInUseException
	switch {
	case err == nil:
		return true, nil
	case errors.As(err, &inUse):
		return false, nil
	default:
		return false, fmt.Errorf("create table %s: %w", aws.ToString(input.TableName), err)
	}
}

func enableTTL(ctx context.Context, client TableAdmin, tableName, ttlAttr string) {
	_, err := client.UpdateTimeToLive(ctx, &dynamodb.UpdateTimeToLiveInput{
		TableName: aws.String(tableName),
		TimeToLiveSpecification: &types.TimeToLiveSpecification{
			Enabled:       aws.Bool(true),
			AttributeName: aws.String(ttlAttr),
		},
	})
	if err != nil {
		slog.Warn("could not enable TTL", "table", tableName, "err", err)
	}
}
