// Package config loads program-level widget defaults from anchor.yaml.
//
// This is configuration for the embedding program, not for individual
// elements; element-attached configuration stays on the element itself and
// always overrides whatever is registered here. DefaultOptions
// implementations typically seed themselves from the registry:
//
//	func (m *Menu) DefaultOptions() map[string]any {
//	    return config.DefaultsFor("menu")
//	}
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/anchor/pkg/errors"
	"github.com/go-drift/anchor/pkg/props"
)

// DefaultFile is the conventional configuration file name.
const DefaultFile = "anchor.yaml"

// Config represents the optional anchor.yaml configuration.
type Config struct {
	// Debug enables verbose error logging, including stack traces.
	Debug bool `yaml:"debug,omitempty"`
	// Widgets maps widget names to their default options.
	Widgets map[string]map[string]any `yaml:"widgets,omitempty"`
}

// Load reads the configuration file at path.
// A missing file yields an empty configuration; a malformed file is a real
// error, since this is host-program configuration rather than
// element-attached data.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]map[string]any)
)

// Register stores default options for the named widget, replacing any
// previous registration.
func Register(name string, defaults map[string]any) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = defaults
}

// DefaultsFor returns a shallow copy of the registered defaults for the
// named widget, or nil when none are registered. The copy keeps later
// widget-level mutation from leaking back into the registry.
func DefaultsFor(name string) map[string]any {
	registryMu.RLock()
	defer registryMu.RUnlock()
	defaults, ok := registry[name]
	if !ok {
		return nil
	}
	return props.Merge(nil, defaults)
}

// Apply registers every widget section of cfg and switches error logging
// to verbose when cfg.Debug is set.
func Apply(cfg *Config) {
	if cfg == nil {
		return
	}
	for name, defaults := range cfg.Widgets {
		Register(name, defaults)
	}
	errors.SetVerbose(cfg.Debug)
}

// Reset clears the registry. Intended for tests.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]map[string]any)
}
