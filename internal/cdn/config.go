package cdn

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	sharederrors "github.com/khanhnv2901/sri-cli/internal/shared/errors"
)

// Resource is one externally hosted resource pinned with SRI.
type Resource struct {
	URL         string `yaml:"url" json:"url"`
	Integrity   string `yaml:"integrity" json:"integrity"`
	CrossOrigin string `yaml:"crossorigin" json:"crossorigin"`
}

// Config maps logical resource names to their definitions.
type Config struct {
	Resources map[string]Resource `yaml:"resources"`
}

// Load reads a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", sharederrors.ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("read CDN config: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML configuration document.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", sharederrors.ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every resource names a URL.
func (c *Config) Validate() error {
	for _, name := range c.Names() {
		if c.Resources[name].URL == "" {
			return fmt.Errorf("%w: resource %q: url", sharederrors.ErrMissingRequired, name)
		}
	}
	return nil
}

// Names returns the resource names in sorted order.
func (c *Config) Names() []string {
	names := make([]string, 0, len(c.Resources))
	for name := range c.Resources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
