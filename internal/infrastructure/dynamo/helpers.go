package dynamo

import (
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// emailKey is the primary key of a verification item.
func emailKey(email string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		fieldEmail: &types.AttributeValueMemberS{Value: email},
	}
}

// expiryCondition matches items whose exact expiry lies before a fixed instant.
type expiryCondition struct {
	expr   *string
	names  map[string]string
	values map[string]types.AttributeValue
}

func expiredBefore(now time.Time) expiryCondition {
	return expiryCondition{
		expr:  aws.String("#exp < :now"),
		names: map[string]string{"#exp": fieldExpiresAtMillis},
		values: map[string]types.AttributeValue{
			":now": &types.AttributeValueMemberN{Value: strconv.FormatInt(now.UnixMilli(), 10)},
		},
	}
}
