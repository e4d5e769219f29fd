package dynamo

import (
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailKey(t *testing.T) {
	key := emailKey("a@b.com")
	require.Len(t, key, 1)
	s, ok := key["email"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "a@b.com", s.Value)
}

func TestExpiredBefore(t *testing.T) {
	cond := expiredBefore(time.UnixMilli(1_700_000_000_123))

	assert.Equal(t, "#exp < :now", aws.ToString(cond.expr))
	assert.Equal(t, map[string]string{"#exp": "expires_at_ms"}, cond.names)
	n, ok := cond.values[":now"].(*types.AttributeValueMemberN)
	require.True(t, ok)
	assert.Equal(t, "1700000000123", n.Value)
}
