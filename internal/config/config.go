// Package config loads the optional grepfmt configuration file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/grepfmt/grepfmt/internal/validator"
)

// ConfigFile is the default configuration file name, looked up in the
// working directory.
const ConfigFile = ".grepfmt.yml"

// ConfigEnvVar overrides the configuration file location.
const ConfigEnvVar = "GREPFMT_CONFIG"

// BinaryEnvVar overrides the formatter binary between config file and flag.
const BinaryEnvVar = "GREPFMT_BINARY"

// configSchema constrains the configuration document before it is decoded.
const configSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "binary": {
      "type": "string",
      "minLength": 1
    },
    "style": {
      "type": "string"
    },
    "extensions": {
      "type": "array",
      "items": {
        "type": "string",
        "pattern": "^\\.?[0-9A-Za-z+]+$"
      }
    }
  }
}`

type Config struct {
	// Binary is the formatter executable. Overridden by GREPFMT_BINARY and --binary.
	Binary string `yaml:"binary"`
	// Style is passed through to the formatter as --style. Overridden by --style.
	Style string `yaml:"style"`
	// Extensions lists extra file extensions to treat as formattable.
	Extensions []string `yaml:"extensions"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingConfigError{Path: path}
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	if doc == nil {
		// Empty file: nothing to validate or decode.
		return &Config{}, nil
	}

	if err := validate(path, doc); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}
	return cfg, nil
}

// LoadDefault looks for ConfigFile in the working directory. An absent file
// is not an error; it just yields the zero configuration.
func LoadDefault() (*Config, error) {
	cfg, err := Load(ConfigFile)
	var missing *MissingConfigError
	if errors.As(err, &missing) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks the decoded YAML document against the embedded schema.
// The document is round-tripped through encoding/json first so the validator
// only ever sees JSON-compatible values.
func validate(path string, doc any) error {
	v, err := validator.CompileBytes("grepfmt-config.schema.json", []byte(configSchema))
	if err != nil {
		return fmt.Errorf("compiling config schema: %w", err)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return &InvalidConfigError{Path: path, Wrapped: err}
	}
	var jsonDoc any
	if err := json.Unmarshal(raw, &jsonDoc); err != nil {
		return &InvalidConfigError{Path: path, Wrapped: err}
	}

	if err := v.Validate(jsonDoc); err != nil {
		return &InvalidConfigError{Path: path, Wrapped: err}
	}
	return nil
}
