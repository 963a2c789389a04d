package config

import (
	"fmt"
	"strings"

	"github.com/2beens/gymdash/internal/recommendations"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Environment string `toml:"environment"`
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsHost string `toml:"metrics_host"`
	MetricsPort string `toml:"metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	LogFormatJSON bool   `toml:"log_format_json"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// postgres
	PostgresEnabled bool   `toml:"postgres_enabled"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`

	// password comes from GYMDASH_PG_PASS
	PostgresUser     string `toml:"postgres_user"`
	PostgresMaxConns int32  `toml:"postgres_max_conns"`

	// redis
	RedisEnabled bool   `toml:"redis_enabled"`
	RedisHost    string `toml:"redis_host"`
	RedisPort    string `toml:"redis_port"`

	// origins allowed on top of the built-in dashboard ones
	CorsOrigins []string `toml:"cors_origins"`
	// requests per minute per client on mutating routes, 0 disables the limiter
	RateLimitPerMinute int `toml:"rate_limit_per_minute"`
	// exercise catalog TOML file, the built-in catalog is used when empty
	CatalogPath string `toml:"catalog_path"`

	Analytics recommendations.Config `toml:"analytics"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no [%s] section in config", strings.ToLower(env))
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env.
func Load(env, path string) (*Config, error) {
	var t Toml
	md, err := toml.DecodeFile(path, &t)
	if err != nil {
		return nil, fmt.Errorf("decode config file [%s]: %w", path, err)
	}

	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}

	section := "production"
	if cfg == t.Development {
		section = "development"
	}
	// an explicit 0 consistency target is kept, a missing one gets the default
	if !md.IsDefined(section, "analytics", "consistency_target") {
		cfg.Analytics.ConsistencyTarget = recommendations.DefaultConfig().ConsistencyTarget
	}
	if cfg.Environment == "" {
		cfg.Environment = strings.ToLower(env)
	}
	if cfg.Host == "" {
		cfg.Host = "localhost"
	}
	if cfg.Port == 0 {
		return nil, fmt.Errorf("port not set for env [%s]", env)
	}

	return cfg, nil
}
