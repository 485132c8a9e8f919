package config

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema returns the JSON Schema describing config.toml.
func Schema() *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.FieldNameTag = "toml"
	schema := r.Reflect(&Config{})

	schema.ID = "https://github.com/nemuelw/protodesk/config.schema.json"
	schema.Title = "Protodesk Configuration"
	schema.Description = "Configuration schema for Protodesk, an unofficial desktop app for Proton"
	return schema
}

// SchemaJSON returns the schema as indented JSON.
func SchemaJSON() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}
