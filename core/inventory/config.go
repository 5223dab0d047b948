package inventory

// Config holds defaults applied to newly created containers.
type Config struct {
	// DefaultSlots is the slot count of a new container. Zero creates a slotless container.
	DefaultSlots int `mapstructure:"default_slots" default:"0"`
	// DefaultCapacity is the total capacity (slotless) or per-slot capacity (slotted).
	DefaultCapacity int64 `mapstructure:"default_capacity" default:"1000"`
	// DefaultRateLimit is the maximum quantity moved by a single operation.
	DefaultRateLimit int64 `mapstructure:"default_rate_limit" default:"64"`
}
