package dynamo

// Attribute names of a verification item.
const (
	fieldEmail           = "email"
	fieldCode            = "code"
	fieldExpiresAt       = "expires_at"    // TTL attribute, Unix seconds
	fieldExpiresAtMillis = "expires_at_ms" // exact expiry, Unix milliseconds
)
