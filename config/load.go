package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaText string

// ErrInvalidConfig is returned when a config file fails validation.
var ErrInvalidConfig = errors.New("invalid config")

var configSchema = jsonschema.MustCompileString("toolrush-config.schema.json", schemaText)

// Load reads a YAML config file and overlays it on the built-in defaults.
// Fields absent from the file keep their default values.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	c, err := Parse(raw)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse validates YAML bytes against the config schema and decodes them on
// top of Defaults.
func Parse(raw []byte) (Config, error) {
	if err := validate(raw); err != nil {
		return Config{}, err
	}

	c := Defaults()
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := c.Check(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// validate runs the schema against the document. YAML is converted through
// JSON so the validator sees json.Number values.
func validate(raw []byte) error {
	var doc interface{}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if doc == nil {
		return nil
	}

	asJSON, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	dec := json.NewDecoder(bytes.NewReader(asJSON))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := configSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Check enforces constraints the schema cannot express.
func (c Config) Check() error {
	seen := make(map[ToolType]bool, NumToolTypes)
	for _, e := range c.Tools {
		if seen[e.Type] {
			return fmt.Errorf("%w: tool %s configured twice", ErrInvalidConfig, e.Type)
		}
		seen[e.Type] = true
	}
	if c.World.SpawnAreaSize.X <= 0 || c.World.SpawnAreaSize.Y <= 0 {
		return fmt.Errorf("%w: spawn area must have a positive size", ErrInvalidConfig)
	}
	if c.Inventory.MaxCapacity <= 0 {
		return fmt.Errorf("%w: inventory capacity must be positive", ErrInvalidConfig)
	}
	return nil
}
