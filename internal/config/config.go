package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Config is a thread-safe settings store backed by a JSON document.
type Config struct {
	mu       sync.RWMutex
	registry map[string]Setting
	raw      []byte
	path     string
}

// New creates a Config with the default glide settings registered and no
// file loaded; all lookups return defaults.
func New() *Config {
	c := &Config{
		registry: make(map[string]Setting),
		raw:      []byte("{}"),
	}
	for _, s := range defaultSettings() {
		c.registry[s.Path] = s
	}
	return c
}

// Register adds or replaces a setting definition.
func (c *Config) Register(s Setting) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.registry[s.Path] = s
}

// LoadFile reads a JSON configuration file. A missing file is not an
// error; the store simply keeps serving defaults.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		c.mu.Lock()
		c.path = path
		c.mu.Unlock()
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: reading %s: %w", path, err)
	}

	if !gjson.ValidBytes(data) {
		return fmt.Errorf("config: %s is not valid JSON", path)
	}

	c.mu.Lock()
	c.raw = data
	c.path = path
	c.mu.Unlock()
	return nil
}

// Save writes the current document back to the loaded path.
func (c *Config) Save() error {
	c.mu.RLock()
	path := c.path
	raw := c.raw
	c.mu.RUnlock()

	if path == "" {
		return fmt.Errorf("config: no file path to save to")
	}
	return os.WriteFile(path, raw, 0o644)
}

// Get returns the value at path, falling back to the registered default.
// Returns ErrUnknownSetting for unregistered paths.
func (c *Config) Get(path string) (any, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	setting, ok := c.registry[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}

	res := gjson.GetBytes(c.raw, path)
	if !res.Exists() {
		return setting.Default, nil
	}

	var value any
	switch setting.Type {
	case TypeBool:
		if res.Type != gjson.True && res.Type != gjson.False {
			return setting.Default, nil
		}
		value = res.Bool()
	case TypeInt:
		if res.Type != gjson.Number {
			return setting.Default, nil
		}
		value = int(res.Int())
	case TypeFloat:
		if res.Type != gjson.Number {
			return setting.Default, nil
		}
		value = res.Float()
	case TypeString:
		if res.Type != gjson.String {
			return setting.Default, nil
		}
		value = res.String()
	}
	return value, nil
}

// Set updates the value at path in the underlying document after type
// validation against the registry.
func (c *Config) Set(path string, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	setting, ok := c.registry[path]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSetting, path)
	}
	if err := setting.validate(value); err != nil {
		return err
	}

	raw, err := sjson.SetBytes(c.raw, path, value)
	if err != nil {
		return fmt.Errorf("config: setting %s: %w", path, err)
	}
	c.raw = raw
	return nil
}

// Bool returns a boolean setting, or its default on any lookup problem.
func (c *Config) Bool(path string) bool {
	v, err := c.Get(path)
	if err != nil {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Int returns an integer setting, or its default on any lookup problem.
func (c *Config) Int(path string) int {
	v, err := c.Get(path)
	if err != nil {
		return 0
	}
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	}
	return 0
}

// Float returns a float setting, or its default on any lookup problem.
func (c *Config) Float(path string) float64 {
	v, err := c.Get(path)
	if err != nil {
		return 0
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return 0
}

// String returns a string setting, or its default on any lookup problem.
func (c *Config) String(path string) string {
	v, err := c.Get(path)
	if err != nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Duration converts a float seconds setting into a time.Duration.
func (c *Config) Duration(path string) time.Duration {
	return time.Duration(c.Float(path) * float64(time.Second))
}
