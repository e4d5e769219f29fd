package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Verification backends.
const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort        string
	AppEnv         string
	AllowedOrigins []string // CORS allowed origins
	TrustedProxy   bool     // take the client IP from X-Forwarded-For / X-Real-IP

	AdminEmail        string
	AdminName         string
	AdminPasswordHash string // bcrypt; wins over AdminPassword
	AdminPassword     string // plain, hashed at startup for local setups
	AdminTwoFactor    bool

	DemoMode                  bool // echo issued codes back to the caller
	VerificationTTL           time.Duration
	VerificationSweepInterval time.Duration
	VerificationBackend       string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables

	JWTPrivateKeyPath string
	JWTPublicKeyPath  string
	JWTExpiry         time.Duration
	ChallengeTTL      time.Duration
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Verifications string
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort:        getEnv("APP_PORT", "3000"),
		AppEnv:         getEnv("APP_ENV", "development"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		TrustedProxy:   getEnvBool("TRUSTED_PROXY", false),

		AdminEmail:        getEnv("ADMIN_EMAIL", "contact@angelivisions.com"),
		AdminName:         getEnv("ADMIN_NAME", "Administrateur"),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", "admin123"),
		AdminTwoFactor:    getEnvBool("ADMIN_TWO_FACTOR", true),

		DemoMode:                  getEnvBool("DEMO_MODE", true),
		VerificationTTL:           getEnvDuration("VERIFICATION_TTL", 10*time.Minute),
		VerificationSweepInterval: getEnvDuration("VERIFICATION_SWEEP_INTERVAL", time.Minute),
		VerificationBackend:       getEnv("VERIFICATION_BACKEND", BackendMemory),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Verifications: getEnv("DYNAMO_TABLE_VERIFICATIONS", "verifications"),
		},

		JWTPrivateKeyPath: getEnv("JWT_PRIVATE_KEY_PATH", "./private_key.pem"),
		JWTPublicKeyPath:  getEnv("JWT_PUBLIC_KEY_PATH", "./public_key.pem"),
		JWTExpiry:         time.Duration(getEnvInt("JWT_EXPIRY_HOURS", 8)) * time.Hour,
		ChallengeTTL:      getEnvDuration("CHALLENGE_TTL", 10*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go duration strings ("90s", "10m").
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return fallback
}
