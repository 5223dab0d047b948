package journal

// Config holds configuration for the transfer journal.
type Config struct {
	// Enabled turns journaling of committed transfers on or off.
	Enabled bool `mapstructure:"enabled" default:"true"`
	// Prefix is the object key prefix under which records are written.
	Prefix string `mapstructure:"prefix" default:"journal"`
	// Concurrency bounds the parallel object reads of List.
	Concurrency int `mapstructure:"concurrency" default:"8"`
}
