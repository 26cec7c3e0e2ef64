package common

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type DBConfig struct {
	Type     string
	Path     string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
}

type Config struct {
	DB DBConfig

	HttpHostPort string
	GrpcHostPort string

	JWTSecret string
	JWTExpiry time.Duration

	DefaultRate  float64
	DefaultBurst int

	RequestTimeout time.Duration
	CorsOrigins    []string

	TemperatureStaleAfter time.Duration
	ActivityStaleAfter    time.Duration
	OfflineSweepSchedule  string
}

var configDefaults = map[string]any{
	EnvKeyDBType:     "file",
	EnvKeyDbPath:     "cattle.db",
	EnvKeyDBHost:     "127.0.0.1",
	EnvKeyDBPort:     3306,
	EnvKeyDBUser:     "root",
	EnvKeyDBPassword: "",
	EnvKeyDBName:     "cattle_health",

	EnvKeyHttpHostPort: ":1080",
	EnvKeyGrpcHostPort: "",

	EnvKeyJWTSecret: "cattle-health-dev-secret",
	EnvKeyJWTExpiry: "24h",

	EnvKeyDefaultRate:  5.0,
	EnvKeyDefaultBurst: 10,

	EnvKeyRequestTimeout: "10s",
	EnvKeyCorsOrigins:    "http://localhost:3000",

	EnvKeyTemperatureStaleAfter: "60s",
	EnvKeyActivityStaleAfter:    "30s",
	EnvKeyOfflineSweepSchedule:  "@every 1m",
}

// LoadConfig reads every setting from the environment, falling back to the
// hard-coded defaults above. Call godotenv.Load before this to honour .env.
func LoadConfig() (*Config, error) {
	v := viper.New()
	for key, value := range configDefaults {
		v.SetDefault(key, value)
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	cfg := &Config{
		DB: DBConfig{
			Type:     strings.ToLower(strings.TrimSpace(v.GetString(EnvKeyDBType))),
			Path:     v.GetString(EnvKeyDbPath),
			Host:     v.GetString(EnvKeyDBHost),
			Port:     v.GetInt(EnvKeyDBPort),
			User:     v.GetString(EnvKeyDBUser),
			Password: v.GetString(EnvKeyDBPassword),
			Name:     v.GetString(EnvKeyDBName),
		},
		HttpHostPort:          strings.TrimSpace(v.GetString(EnvKeyHttpHostPort)),
		GrpcHostPort:          strings.TrimSpace(v.GetString(EnvKeyGrpcHostPort)),
		JWTSecret:             v.GetString(EnvKeyJWTSecret),
		JWTExpiry:             v.GetDuration(EnvKeyJWTExpiry),
		DefaultRate:           v.GetFloat64(EnvKeyDefaultRate),
		DefaultBurst:          v.GetInt(EnvKeyDefaultBurst),
		RequestTimeout:        v.GetDuration(EnvKeyRequestTimeout),
		CorsOrigins:           splitList(v.GetString(EnvKeyCorsOrigins)),
		TemperatureStaleAfter: v.GetDuration(EnvKeyTemperatureStaleAfter),
		ActivityStaleAfter:    v.GetDuration(EnvKeyActivityStaleAfter),
		OfflineSweepSchedule:  strings.TrimSpace(v.GetString(EnvKeyOfflineSweepSchedule)),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Type {
	case "file", "memory", "mysql", "postgres":
	default:
		return fmt.Errorf("unknown %s: %q", EnvKeyDBType, c.DB.Type)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%s must not be empty", EnvKeyJWTSecret)
	}
	if c.JWTExpiry <= 0 {
		return fmt.Errorf("invalid %s, should be a positive duration", EnvKeyJWTExpiry)
	}
	if c.DefaultRate < 0 || c.DefaultBurst < 0 {
		return fmt.Errorf("invalid %s/%s, should not be negative", EnvKeyDefaultRate, EnvKeyDefaultBurst)
	}
	if c.TemperatureStaleAfter <= 0 || c.ActivityStaleAfter <= 0 {
		return fmt.Errorf("stale thresholds must be positive durations")
	}
	if c.HttpHostPort == "" {
		c.HttpHostPort = ":1080"
	}
	return nil
}

// splitList turns "a, b,,c" into [a b c].
func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
