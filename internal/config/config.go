package config

// Config holds all gateway configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Event    EventConfig    `mapstructure:"event" validate:"required"`
	Services ServicesConfig `mapstructure:"services" validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Debug    bool   `mapstructure:"debug"`
	// MaxFileSize caps multipart upload bodies, in MiB.
	MaxFileSize int64 `mapstructure:"max_file_size" validate:"required,gt=0"`
}

// MaxFileBytes returns the upload body cap in bytes.
func (s ServerConfig) MaxFileBytes() int64 {
	return s.MaxFileSize << 20
}

// EventConfig contains event-cycle settings operators adjust per festival
// day without redeploying.
type EventConfig struct {
	// CheckinDay selects which checkin-day-N token the check-in endpoints
	// operate on.
	CheckinDay int `mapstructure:"checkin_day" validate:"required,gt=0"`
	// EstampRequiredCount is the exact number of collected stamps a user
	// must hold before redeeming.
	EstampRequiredCount int `mapstructure:"estamp_required_count" validate:"required,gt=0"`
	// RedeemFull is the kill switch: when true, redemption is refused
	// because the physical reward stock is exhausted.
	RedeemFull bool `mapstructure:"redeem_full"`
}

// ServicesConfig holds the gRPC addresses of every backend this gateway
// fronts. The backend address serves the user, baan, and group services.
type ServicesConfig struct {
	Auth    string `mapstructure:"auth" validate:"required,hostname_port"`
	Backend string `mapstructure:"backend" validate:"required,hostname_port"`
	File    string `mapstructure:"file" validate:"required,hostname_port"`
	Checkin string `mapstructure:"checkin" validate:"required,hostname_port"`
}
