// Package config defines default configuration, input bounds, and loading.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig reports a configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid configuration")

// Limits are the accepted input bounds.
type Limits struct {
	// MinShops and MaxShops bound the shop count declared in the header.
	MinShops uint64 `mapstructure:"min_shops"`
	MaxShops uint64 `mapstructure:"max_shops"`
	// MinRoads and MaxRoads bound the road count declared in the header.
	MinRoads uint64 `mapstructure:"min_roads"`
	MaxRoads uint64 `mapstructure:"max_roads"`
	// MinShopID and MaxShopID bound every accepted shop identifier.
	MinShopID uint64 `mapstructure:"min_shop_id"`
	MaxShopID uint64 `mapstructure:"max_shop_id"`
}

// ExportConfig selects the report encoding and destination.
type ExportConfig struct {
	Format string `mapstructure:"format"`
	Out    string `mapstructure:"out"` // Directory or "s3://bucket/prefix"
}

// Config holds every runtime setting.
type Config struct {
	Limits Limits `mapstructure:"limits"`

	// StrictTargets applies the shop ID range check to road destinations too.
	StrictTargets bool `mapstructure:"strict_targets"`

	Verbose       bool   `mapstructure:"verbose"`
	JSONLogs      bool   `mapstructure:"json_logs"`
	OtelEndpoint  string `mapstructure:"otel_endpoint"`
	SkipTelemetry bool   `mapstructure:"skip_telemetry"`

	// Workers bounds batch parallelism.
	Workers int `mapstructure:"workers"`

	Export ExportConfig `mapstructure:"export"`
}

// Defaults.
const (
	DefaultExportFormat = "json"
	DefaultExportOut    = "shopnet-out"
	DefaultWorkers      = 4
)

// DefaultLimits returns the bounds of the reference input format.
func DefaultLimits() Limits {
	return Limits{
		MinShops:  2,
		MaxShops:  1000,
		MinRoads:  1,
		MaxRoads:  1000,
		MinShopID: 1,
		MaxShopID: 1000,
	}
}

// Default returns a configuration with default values.
func Default() Config {
	return Config{
		Limits:  DefaultLimits(),
		Workers: DefaultWorkers,
		Export: ExportConfig{
			Format: DefaultExportFormat,
			Out:    DefaultExportOut,
		},
	}
}

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	l := c.Limits
	if l.MinShops > l.MaxShops {
		return fmt.Errorf("%w: min_shops %d exceeds max_shops %d", ErrInvalidConfig, l.MinShops, l.MaxShops)
	}
	if l.MinRoads > l.MaxRoads {
		return fmt.Errorf("%w: min_roads %d exceeds max_roads %d", ErrInvalidConfig, l.MinRoads, l.MaxRoads)
	}
	if l.MinShopID > l.MaxShopID {
		return fmt.Errorf("%w: min_shop_id %d exceeds max_shop_id %d", ErrInvalidConfig, l.MinShopID, l.MaxShopID)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, c.Workers)
	}
	switch c.Export.Format {
	case "json", "yaml", "csv":
	default:
		return fmt.Errorf("%w: unsupported export format %q", ErrInvalidConfig, c.Export.Format)
	}
	return nil
}

// ShopIDInRange reports whether id lies within the accepted identifier range.
func (l Limits) ShopIDInRange(id uint64) bool {
	return id >= l.MinShopID && id <= l.MaxShopID
}
