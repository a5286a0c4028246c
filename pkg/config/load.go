package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// SetDefaults registers every default value on v, so env variables and
// config files can override individual keys.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("limits.min_shops", d.Limits.MinShops)
	v.SetDefault("limits.max_shops", d.Limits.MaxShops)
	v.SetDefault("limits.min_roads", d.Limits.MinRoads)
	v.SetDefault("limits.max_roads", d.Limits.MaxRoads)
	v.SetDefault("limits.min_shop_id", d.Limits.MinShopID)
	v.SetDefault("limits.max_shop_id", d.Limits.MaxShopID)
	v.SetDefault("strict_targets", d.StrictTargets)
	v.SetDefault("verbose", d.Verbose)
	v.SetDefault("json_logs", d.JSONLogs)
	v.SetDefault("otel_endpoint", d.OtelEndpoint)
	v.SetDefault("skip_telemetry", d.SkipTelemetry)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("export.format", d.Export.Format)
	v.SetDefault("export.out", d.Export.Out)
}

// Load resolves the configuration held by v on top of the defaults.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
