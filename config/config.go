package config

import (
	"time"

	"github.com/heishia/bluroutine/pkg/config"
)

type SeedConfig struct {
	DemoData bool `yaml:"demo_data"`
}

type Config struct {
	Server config.ServerConfig `yaml:"server"`
	JWT    config.JWTConfig    `yaml:"jwt"`
	CORS   config.CORSConfig   `yaml:"cors"`
	Redis  config.RedisConfig  `yaml:"redis"`
	MQ     config.MQConfig     `yaml:"mq"`
	Auth   config.AuthConfig   `yaml:"auth"`
	Log    config.LogConfig    `yaml:"log"`
	Seed   SeedConfig          `yaml:"seed"`
}

// Default mirrors what the service ran with before it had a config file.
func Default() *Config {
	return &Config{
		Server: config.ServerConfig{
			Port:            ":3001",
			ShutdownTimeout: 10 * time.Second,
		},
		JWT: config.JWTConfig{
			Secret: "bluroutine_jwt_secret_key_2025",
			TTL:    7 * 24 * time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://127.0.0.1:5173",
				"http://localhost:3000",
				"http://127.0.0.1:3000",
			},
		},
		MQ: config.MQConfig{
			Exchange: "bluroutine.events",
		},
		Auth: config.AuthConfig{
			MaxLoginFailures: 5,
			LockoutWindow:    15 * time.Minute,
		},
		Log: config.LogConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

// Load reads path (and path's env overlay) on top of Default, then applies
// environment overrides (生产环境使用).
func Load(path, env string) (*Config, error) {
	cfg := Default()
	if err := config.LoadYAML(path, env, cfg); err != nil {
		return nil, err
	}
	overrideFromEnv(cfg)
	return cfg, nil
}

func overrideFromEnv(cfg *Config) {
	config.OverrideServerFromEnv(&cfg.Server)
	config.OverrideJWTFromEnv(&cfg.JWT)
	config.OverrideCORSFromEnv(&cfg.CORS)
	config.OverrideRedisFromEnv(&cfg.Redis)
	config.OverrideMQFromEnv(&cfg.MQ)
	config.OverrideLogFromEnv(&cfg.Log)
	cfg.Seed.DemoData = config.BoolFromEnv("SEED_DEMO_DATA", cfg.Seed.DemoData)
}
