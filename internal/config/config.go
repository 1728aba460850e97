// Package config provides configuration management for the gcloudctl CLI.
//
// It implements the disciplined Viper pattern where Viper stays contained
// in this package and the rest of the codebase receives explicit Config
// structs. Configuration sources are resolved in this order:
// flags > env > config file > defaults.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultImage is the gcloud image used in docker mode when none is
// configured. Untagged references get the newest numbered tag from the
// registry at initialization.
const DefaultImage = "google/cloud-sdk"

// Config is the explicit configuration struct. It is built once at startup
// and passed into components; nothing reads viper after this point.
type Config struct {
	// Docker switches gcloud execution from the local binary to one-shot
	// containers of Image with the credential volume mounted.
	Docker bool
	Image  string

	// Volume names a persistent credential volume to reuse across runs.
	// Empty means a transient volume, deleted at exit.
	Volume string

	KeyFile string
	Project string
	Zone    string

	Silent bool
	Trace  bool
}

// Init initializes viper with defaults, config file paths and the
// environment binding.
func Init() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.AddConfigPath("$HOME/.gcloudctl")
	viper.AddConfigPath(".")

	viper.SetDefault("docker", false)
	viper.SetDefault("image", DefaultImage)
	viper.SetDefault("volume", "")
	viper.SetDefault("key", "")
	viper.SetDefault("project", "")
	viper.SetDefault("zone", "")
	viper.SetDefault("silent", false)
	viper.SetDefault("trace", false)

	viper.SetEnvPrefix("GCLOUDCTL")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

// Load reads from all sources and returns the explicit Config.
func Load() (*Config, error) {
	cfg := &Config{
		Docker:  viper.GetBool("docker"),
		Image:   viper.GetString("image"),
		Volume:  viper.GetString("volume"),
		KeyFile: viper.GetString("key"),
		Project: viper.GetString("project"),
		Zone:    viper.GetString("zone"),
		Silent:  viper.GetBool("silent"),
		Trace:   viper.GetBool("trace"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures config is sane.
func (c *Config) Validate() error {
	if c.Docker && c.Image == "" {
		return fmt.Errorf("docker mode requires an image reference")
	}

	if !c.Docker && c.Volume != "" {
		return fmt.Errorf("--volume only makes sense together with --docker")
	}

	if strings.ContainsAny(c.Volume, " /") {
		return fmt.Errorf("invalid volume name: %q", c.Volume)
	}

	return nil
}

// ImageTagged reports whether the configured image reference pins a tag.
func (c *Config) ImageTagged() bool {
	// A colon after the last slash is a tag separator; earlier colons
	// belong to a registry host:port.
	ref := c.Image
	if i := strings.LastIndex(ref, "/"); i >= 0 {
		ref = ref[i+1:]
	}
	return strings.Contains(ref, ":")
}

// ImageRepository returns the image reference without its tag.
func (c *Config) ImageRepository() string {
	ref := c.Image
	slash := strings.LastIndex(ref, "/")
	if i := strings.LastIndex(ref, ":"); i > slash {
		return ref[:i]
	}
	return ref
}
