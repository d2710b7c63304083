// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2025-Present Defense Unicorns

// Package config provides the optional brewbump configuration file
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/invopop/jsonschema"
	"github.com/spf13/afero"
	"github.com/xeipuuv/gojsonschema"

	"github.com/defenseunicorns/brewbump"
)

// SchemaVersion is the current schema version for configs
const SchemaVersion = "v0"

// DefaultFileName is the config file looked up in the working directory when none is given
const DefaultFileName = ".brewbump.yaml"

// Config is the brewbump configuration file
type Config struct {
	SchemaVersion string            `json:"schema-version"`
	Targets       []brewbump.Target `json:"targets" jsonschema:"minItems=1,uniqueItems=true"`
}

// versioned is used to peek at the schema version before a full parse
type versioned struct {
	SchemaVersion string `json:"schema-version"`
}

// JSONSchemaExtend extends the JSON schema for a config
func (Config) JSONSchemaExtend(schema *jsonschema.Schema) {
	if schemaVersion, ok := schema.Properties.Get("schema-version"); ok && schemaVersion != nil {
		schemaVersion.Description = "Config schema version"
		schemaVersion.Enum = []any{SchemaVersion}
	}

	if targets, ok := schema.Properties.Get("targets"); ok && targets != nil {
		targets.Description = "Build targets in the order their sha256 entries appear in the formula"
		if targets.Items != nil {
			targets.Items.Pattern = "^[a-zA-Z0-9_.-]+$"
		}
	}
}

// Default returns the config used when no file is present
func Default() *Config {
	return &Config{
		SchemaVersion: SchemaVersion,
		Targets:       brewbump.DefaultTargets(),
	}
}

// LoadConfig loads name from fsys
//
// If the file does not exist, this function returns Default()
func LoadConfig(fsys afero.Fs, name string) (*Config, error) {
	f, err := fsys.Open(name)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses and validates a config
//
// Omitted targets fall back to brewbump.DefaultTargets
func Read(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var v versioned
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}

	switch version := v.SchemaVersion; version {
	case SchemaVersion:
		cfg := Default()
		cfg.Targets = nil
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		if len(cfg.Targets) == 0 {
			cfg.Targets = brewbump.DefaultTargets()
		}
		return cfg, Validate(cfg)
	default:
		return nil, fmt.Errorf("unsupported config schema version: expected %q, got %q", SchemaVersion, version)
	}
}

// The schema never changes at runtime, so only reflect it once
var schemaOnce = sync.OnceValues(func() (string, error) {
	s := Schema()
	b, err := json.Marshal(s)
	return string(b), err
})

// Validate checks if a config adheres to the JSON schema
func Validate(config *Config) error {
	schema, err := schemaOnce()
	if err != nil {
		return err
	}

	schemaLoader := gojsonschema.NewStringLoader(schema)

	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewGoLoader(config))
	if err != nil {
		return err
	}

	if result.Valid() {
		return nil
	}

	var resErr error
	for _, err := range result.Errors() {
		resErr = errors.Join(resErr, errors.New(err.String()))
	}

	return resErr
}

// Schema returns the JSON schema for the Config type
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{DoNotReference: true}
	return reflector.Reflect(&Config{})
}
