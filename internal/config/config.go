// Package config merges config file, SUISTREAM_ environment variables,
// and command-line flags into one settings struct.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds configuration values loaded from flags, env, or file.
type Config struct {
	RPCURL         string
	RequestTimeout time.Duration
	StartSequence  int64
	Lag            int64
	Period         time.Duration
	ChunkSize      int
	Workers        int
	MaxRetries     int
	RetryBackoff   time.Duration
	Outputs        []string
	Entities       []string
	LastSyncedFile string
	LastSyncedSave bool
	MetricsAddr    string
	LogLevel       string
}

// Load merges config file, environment variables, and flags.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SUISTREAM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("request-timeout", 30*time.Second)
	v.SetDefault("start", int64(-1))
	v.SetDefault("lag", int64(0))
	v.SetDefault("period", 10*time.Second)
	v.SetDefault("chunk-size", 25)
	v.SetDefault("workers", 1)
	v.SetDefault("max-retries", 5)
	v.SetDefault("retry-backoff", 500*time.Millisecond)
	v.SetDefault("output", "console")
	v.SetDefault("entity-types", "checkpoint,transaction,object,event")
	v.SetDefault("last-synced-file", "./data/last_synced.json")
	v.SetDefault("last-synced-enabled", true)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		RPCURL:         v.GetString("rpc"),
		RequestTimeout: v.GetDuration("request-timeout"),
		StartSequence:  v.GetInt64("start"),
		Lag:            v.GetInt64("lag"),
		Period:         v.GetDuration("period"),
		ChunkSize:      v.GetInt("chunk-size"),
		Workers:        v.GetInt("workers"),
		MaxRetries:     v.GetInt("max-retries"),
		RetryBackoff:   v.GetDuration("retry-backoff"),
		Outputs:        getStringSlice(v, "output"),
		Entities:       getStringSlice(v, "entity-types"),
		LastSyncedFile: v.GetString("last-synced-file"),
		LastSyncedSave: v.GetBool("last-synced-enabled"),
		MetricsAddr:    v.GetString("metrics-addr"),
		LogLevel:       v.GetString("log-level"),
	}

	return cfg, nil
}

func getStringSlice(v *viper.Viper, key string) []string {
	if !v.IsSet(key) {
		return nil
	}

	val := v.Get(key)
	switch typed := val.(type) {
	case []string:
		return cleanStrings(typed)
	case string:
		return splitAndClean(typed)
	case []interface{}:
		items := make([]string, 0, len(typed))
		for _, item := range typed {
			items = append(items, fmt.Sprintf("%v", item))
		}
		return cleanStrings(items)
	default:
		return nil
	}
}

func splitAndClean(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	return cleanStrings(parts)
}

func cleanStrings(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
	}
	return out
}
