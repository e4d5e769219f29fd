package dynamo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/event-showcase-api/internal/domain"
)

// API is the subset of the DynamoDB client used by the repositories.
type API interface {
	PutItem(ctx context.Context, in *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	GetItem(ctx context.Context, in *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	DeleteItem(ctx context.Context, in *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, in *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// verificationItem is the stored shape of a domain.VerificationEntry.
// PK: email. DynamoDB TTL runs on expires_at, but deletion is lazy, so reads
// compare against expires_at_ms themselves.
type verificationItem struct {
	Email           string `dynamodbav:"email"`
	Code            string `dynamodbav:"code"`
	ExpiresAt       int64  `dynamodbav:"expires_at"`
	ExpiresAtMillis int64  `dynamodbav:"expires_at_ms"`
}

func toItem(e *domain.VerificationEntry) verificationItem {
	return verificationItem{
		Email:           e.Email,
		Code:            e.Code,
		ExpiresAt:       e.ExpiresAt.Unix(),
		ExpiresAtMillis: e.ExpiresAt.UnixMilli(),
	}
}

func (i verificationItem) entry() *domain.VerificationEntry {
	return &domain.VerificationEntry{
		Email:     i.Email,
		Code:      i.Code,
		ExpiresAt: time.UnixMilli(i.ExpiresAtMillis).UTC(),
	}
}

// VerificationRepo stores one-time codes in DynamoDB.
type VerificationRepo struct {
	client    API
	tableName string
	now       func() time.Time
}

func NewVerificationRepo(client API, tableName string) *VerificationRepo {
	return &VerificationRepo{client: client, tableName: tableName, now: time.Now}
}

// WithClock replaces time.Now, mostly for tests.
func (r *VerificationRepo) WithClock(now func() time.Time) *VerificationRepo {
	r.now = now
	return r
}

func (r *VerificationRepo) Set(ctx context.Context, email, code string, ttl time.Duration) (*domain.VerificationEntry, error) {
	entry := &domain.VerificationEntry{Email: email, Code: code, ExpiresAt: r.now().Add(ttl)}
	item, err := attributevalue.MarshalMap(toItem(entry))
	if err != nil {
		return nil, fmt.Errorf("marshal verification: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(r.tableName),
		Item:      item,
	})
	if err != nil {
		return nil, fmt.Errorf("put verification: %w", err)
	}
	return entry, nil
}

func (r *VerificationRepo) Get(ctx context.Context, email string) (*domain.VerificationEntry, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            emailKey(email),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("get verification: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("no code for %q: %w", email, domain.ErrCodeNotFound)
	}
	var item verificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("unmarshal verification: %w", err)
	}
	now := r.now()
	entry := item.entry()
	if entry.Expired(now) {
		r.deleteExpired(ctx, email, now)
		return nil, fmt.Errorf("code for %q: %w", email, domain.ErrCodeExpired)
	}
	return entry, nil
}

// Consume deletes the item for email only if it still holds code and has not
// expired, so a code replaced by a later Set is never accepted. When the
// condition fails, the item returned with the exception tells the outcome apart.
func (r *VerificationRepo) Consume(ctx context.Context, email, code string) error {
	now := r.now()
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 emailKey(email),
		ConditionExpression: aws.String("#code = :code AND #exp >= :now"),
		ExpressionAttributeNames: map[string]string{
			"#code": fieldCode,
			"#exp":  fieldExpiresAtMillis,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: code},
			":now":  &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	var ccf *types.ConditionalCheckFailedException
	switch {
	case err == nil:
		return nil
	case !errors.As(err, &ccf):
		return fmt.Errorf("consume verification: %w", err)
	case len(ccf.Item) == 0:
		return fmt.Errorf("no code for %q: %w", email, domain.ErrCodeNotFound)
	}

	var item verificationItem
	if err := attributevalue.UnmarshalMap(ccf.Item, &item); err != nil {
		return fmt.Errorf("unmarshal verification: %w", err)
	}
	if item.entry().Expired(now) {
		r.deleteExpired(ctx, email, now)
		return fmt.Errorf("code for %q: %w", email, domain.ErrCodeExpired)
	}
	return fmt.Errorf("code for %q: %w", email, domain.ErrCodeMismatch)
}

// deleteExpired removes the item for email if it is still expired at now. A
// code issued since the read survives.
func (r *VerificationRepo) deleteExpired(ctx context.Context, email string, now time.Time) {
	cond := expiredBefore(now)
	_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       emailKey(email),
		ConditionExpression:       cond.expr,
		ExpressionAttributeNames:  cond.names,
		ExpressionAttributeValues: cond.values,
	})
	var ccf *types.ConditionalCheckFailedException
	if err != nil && !errors.As(err, &ccf) {
		slog.Warn("failed to delete expired verification", "email", email, "err", err)
	}
}

func (r *VerificationRepo) Delete(ctx context.Context, email string) (bool, error) {
	out, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(r.tableName),
		Key:          emailKey(email),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return false, fmt.Errorf("delete verification: %w", err)
	}
	return len(out.Attributes) > 0, nil
}

// Sweep removes expired codes ahead of DynamoDB's own TTL process. The delete is
// conditional so a code re-issued between scan and delete survives.
func (r *VerificationRepo) Sweep(ctx context.Context) (int, error) {
	cond := expiredBefore(r.now())
	paginator := dynamodb.NewScanPaginator(r.client, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          cond.expr,
		ExpressionAttributeNames:  cond.names,
		ExpressionAttributeValues: cond.values,
	})

	removed := 0
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return removed, fmt.Errorf("scan verifications: %w", err)
		}
		var items []verificationItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return removed, fmt.Errorf("unmarshal verifications: %w", err)
		}
		now := r.now()
		for _, item := range items {
			if !item.entry().Expired(now) {
				continue
			}
			_, err := r.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
				TableName:                 aws.String(r.tableName),
				Key:                       emailKey(item.Email),
				ConditionExpression:       cond.expr,
				ExpressionAttributeNames:  cond.names,
				ExpressionAttributeValues: cond.values,
			})
			var ccf *types.ConditionalCheckFailedException
			switch {
			case errors.As(err, &ccf):
				continue
			case err != nil:
				return removed, fmt.Errorf("delete verification: %w", err)
			}
			removed++
		}
	}
	return removed, nil
}
