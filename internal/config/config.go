// Package config provides the CLI configuration layer: defaults, flags,
// environment variables, and an optional config file, merged through viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/mlkit-go/sqdiff/internal/parallel"
)

type Config struct {
	Eval     EvalConfig `mapstructure:"eval"`
	LogLevel string     `mapstructure:"log_level"`
}

type EvalConfig struct {
	Workers      int `mapstructure:"workers"`
	MinChunkSize int `mapstructure:"min_chunk_size"`
}

// Parallel converts the evaluator settings to a parallel.Config.
func (e EvalConfig) Parallel() parallel.Config {
	return parallel.Config{
		Workers:      e.Workers,
		MinChunkSize: e.MinChunkSize,
	}
}

type LoadOptions struct {
	Cmd        flagBinder
	ConfigFile string
	Defaults   Config
}

type flagBinder interface {
	Flags() *pflag.FlagSet
}

func DefaultConfig() Config {
	defaults := parallel.DefaultConfig()
	return Config{
		Eval: EvalConfig{
			Workers:      defaults.Workers,
			MinChunkSize: defaults.MinChunkSize,
		},
		LogLevel: "info",
	}
}

func RegisterFlags(fs *pflag.FlagSet, defaults Config) {
	fs.Int("eval-workers", defaults.Eval.Workers, "Goroutines used for large evaluations (1 = sequential)")
	fs.Int("eval-min-chunk-size", defaults.Eval.MinChunkSize, "Smallest output range worth its own goroutine")
	fs.String("log-level", defaults.LogLevel, "Log level (debug|info|warn|error)")
}

func Load(opts LoadOptions) (Config, error) {
	v := viper.New()

	setDefaults(v, opts.Defaults)
	if opts.Cmd != nil {
		if err := v.BindPFlags(opts.Cmd.Flags()); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}
	registerAliases(v)

	v.SetEnvPrefix("SQDIFF")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	} else {
		v.SetConfigName("sqdiff")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if cfg.Eval.Workers < 1 {
		return Config{}, fmt.Errorf("eval.workers must be >= 1, got %d", cfg.Eval.Workers)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, c Config) {
	v.SetDefault("eval.workers", c.Eval.Workers)
	v.SetDefault("eval.min_chunk_size", c.Eval.MinChunkSize)
	v.SetDefault("log_level", c.LogLevel)
}

func registerAliases(v *viper.Viper) {
	v.RegisterAlias("eval.workers", "eval-workers")
	v.RegisterAlias("eval.min_chunk_size", "eval-min-chunk-size")
	v.RegisterAlias("log_level", "log-level")
}
