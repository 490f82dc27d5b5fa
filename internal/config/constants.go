package config

import "time"

// Session store backends
const (
	SessionStoreMemory   = "memory"
	SessionStorePostgres = "postgres"
)

// Deployment environments
const (
	EnvironmentDev  = "dev"
	EnvironmentProd = "prod"
)

// Defaults
const (
	// DefaultEnvironment keeps debug routes off and cookies Secure unless dev is asked for
	DefaultEnvironment = EnvironmentProd

	DefaultPort             = 5000
	DefaultBungieBaseURL    = "https://www.bungie.net"
	DefaultManifestPath     = "DestinyInventoryItemDefinition.json"
	DefaultUpstreamTimeout  = 30 * time.Second
	DefaultSessionTTL       = 24 * time.Hour
	DefaultSessionCacheSize = 10000
	DefaultDBMaxConns       = 10
	DefaultServiceName      = "gudguns"

	// Membership used when the account's memberships cannot be resolved
	DefaultMembershipType = 3
	DefaultMembershipID   = "4611686018540653658"
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleClientSecret = "your_client_secret"
	ExampleSecretKey    = "change_me"
)
