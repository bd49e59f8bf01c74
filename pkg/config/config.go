package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/singnet/snet-netset-go/pkg/cookie"
	"github.com/singnet/snet-netset-go/pkg/network"
)

// DefaultSets is used when Config.Sets is empty.
var DefaultSets = []string{"btc", "ltc", "asi"}

// Config holds the settings used to construct network sets.
// Use Validate to fill implicit defaults and to check the set list.
type Config struct {
	// Sets names the network sets to load. Default: DefaultSets.
	Sets []string `json:"sets" yaml:"sets"`
	// Features switches off cookie paths or fixed seeds.
	Features network.Features `json:"features" yaml:"features"`
	// Debug enables verbose logging.
	Debug bool `json:"debug" yaml:"debug"`
	// HomeDir, when set, is used instead of $HOME for cookie paths.
	HomeDir string `json:"home_dir" yaml:"home_dir"`
	// AppDataDir, when set, is used instead of %APPDATA% for cookie paths.
	AppDataDir string `json:"app_data_dir" yaml:"app_data_dir"`
}

// Load reads a YAML configuration file, expands environment variables in it
// and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(data))), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate normalizes the configuration: set names are trimmed and
// lower-cased and Sets defaults to DefaultSets. It returns an error for an
// empty or repeated set name.
func (c *Config) Validate() error {
	if len(c.Sets) == 0 {
		c.Sets = append([]string(nil), DefaultSets...)
		return nil
	}

	seen := make(map[string]struct{}, len(c.Sets))
	for i, name := range c.Sets {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			return errors.New("empty network set name")
		}
		if _, dup := seen[name]; dup {
			return fmt.Errorf("network set %q listed twice", name)
		}
		seen[name] = struct{}{}
		c.Sets[i] = name
	}
	return nil
}

// Getenv returns the configured directory overrides for the cookie
// environment variables and falls back to os.Getenv.
func (c *Config) Getenv(key string) string {
	switch {
	case key == cookie.HomeEnv && c.HomeDir != "":
		return c.HomeDir
	case key == cookie.AppDataEnv && c.AppDataDir != "":
		return c.AppDataDir
	}
	return os.Getenv(key)
}

// Resolver returns a cookie resolver honoring the directory overrides.
func (c *Config) Resolver() cookie.Resolver {
	return cookie.Resolver{Getenv: c.Getenv}
}
