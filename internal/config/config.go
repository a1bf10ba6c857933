// Package config loads CLI configuration from ~/.litterquest.yaml and
// LQ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zxsa0716/ecoproject/internal/store"
)

type Config struct {
	StoreBackend string
	StorePath    string
	DefaultLat   float64
	DefaultLng   float64
}

// Load reads configuration, applying defaults for anything unset. A
// missing config file is not an error.
func Load() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("get home dir: %w", err)
	}

	v := viper.New()
	v.SetConfigName(".litterquest")
	v.SetConfigType("yaml")
	v.AddConfigPath(home)
	v.SetEnvPrefix("LQ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("store.backend", store.BackendSQLite)
	v.SetDefault("store.path", "")
	v.SetDefault("location.lat", 37.5665)
	v.SetDefault("location.lng", 126.9780)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		StoreBackend: v.GetString("store.backend"),
		StorePath:    v.GetString("store.path"),
		DefaultLat:   v.GetFloat64("location.lat"),
		DefaultLng:   v.GetFloat64("location.lng"),
	}
	if cfg.StorePath == "" {
		cfg.StorePath = defaultStorePath(home, cfg.StoreBackend)
	}
	return cfg, nil
}

// defaultStorePath places state under the home directory: a single db
// file for sqlite, a directory of per-key files for json.
func defaultStorePath(home, backend string) string {
	if backend == store.BackendJSON {
		return filepath.Join(home, ".litterquest", "state")
	}
	return filepath.Join(home, ".litterquest.db")
}
