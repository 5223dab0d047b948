package objectstore

import "time"

// Config holds configuration for the object store.
type Config struct {
	// Endpoint is the host:port of the storage service. An https:// scheme
	// implies UseSSL.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket holds the transfer journal.
	Bucket string `mapstructure:"bucket" default:"ingredients"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// Timeout bounds dialing, the TLS handshake and waiting for response headers.
	Timeout time.Duration `mapstructure:"timeout" default:"30s"`
}
