// Package config loads the vebcheck settings from command line flags and
// VEBCHECK_* environment variables. Explicit flags win over the environment,
// which wins over the defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "VEBCHECK"

const (
	keyUniverse    = "universe"
	keyLeafSize    = "leaf-size"
	keyOps         = "ops"
	keySeed        = "seed"
	keyVerifyEvery = "verify-every"
	keyDemo        = "demo"
	keyLogLevel    = "log-level"
)

type Config struct {
	Universe    uint64
	LeafSize    uint64
	Ops         int
	Seed        int64
	VerifyEvery int
	Demo        bool
	LogLevel    string
}

// Load parses args (without the program name) and the environment.
func Load(name string, args []string) (Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)

	fs.Uint64(keyUniverse, 1<<16, "universe size, must be 2^(2^k)")
	fs.Uint64(keyLeafSize, 16, "largest universe stored as a flat bitmap")
	fs.Int(keyOps, 100_000, "number of random operations to run")
	fs.Int64(keySeed, 1234567890, "seed of the random workload")
	fs.Int(keyVerifyEvery, 1_000, "verify tree invariants every N operations (0 disables)")
	fs.Bool(keyDemo, true, "run the worked example before the random workload")
	fs.String(keyLogLevel, "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg := Config{
		Universe:    v.GetUint64(keyUniverse),
		LeafSize:    v.GetUint64(keyLeafSize),
		Ops:         v.GetInt(keyOps),
		Seed:        v.GetInt64(keySeed),
		VerifyEvery: v.GetInt(keyVerifyEvery),
		Demo:        v.GetBool(keyDemo),
		LogLevel:    strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the settings that do not depend on the tree itself; the
// universe and leaf size are validated when the tree is built.
func (c Config) Validate() error {
	if c.Ops < 0 {
		return fmt.Errorf("invalid %s: %d", keyOps, c.Ops)
	}
	if c.VerifyEvery < 0 {
		return fmt.Errorf("invalid %s: %d", keyVerifyEvery, c.VerifyEvery)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %q", keyLogLevel, c.LogLevel)
	}
	return nil
}
