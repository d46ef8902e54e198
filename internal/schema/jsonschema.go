package schema

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// JSONSchema renders the schema as a JSON Schema object for tool discovery.
func (s Schema) JSONSchema() map[string]any {
	return objectSchema(s.Fields, "")
}

// Properties returns the JSON Schema "properties" map.
func (s Schema) Properties() map[string]any {
	return properties(s.Fields)
}

// RequiredNames returns the names of required top-level fields.
func (s Schema) RequiredNames() []string {
	return requiredNames(s.Fields)
}

func objectSchema(fields []Field, description string) map[string]any {
	out := map[string]any{
		"type":       string(TypeObject),
		"properties": properties(fields),
	}
	if description != "" {
		out["description"] = description
	}
	if req := requiredNames(fields); len(req) > 0 {
		out["required"] = req
	}
	return out
}

func properties(fields []Field) map[string]any {
	props := make(map[string]any, len(fields))
	for _, f := range fields {
		props[f.Name] = fieldSchema(f)
	}
	return props
}

func requiredNames(fields []Field) []string {
	var req []string
	for _, f := range fields {
		if f.Required {
			req = append(req, f.Name)
		}
	}
	return req
}

func fieldSchema(f Field) map[string]any {
	if f.Type == TypeObject {
		return objectSchema(f.Fields, f.Description)
	}

	out := map[string]any{"type": string(f.Type)}
	if f.Description != "" {
		out["description"] = f.Description
	}
	if len(f.Enum) > 0 {
		out["enum"] = f.Enum
	}
	if f.Format != "" {
		out["format"] = f.Format
	}
	if f.Positive {
		out["minimum"] = 1
	}
	return out
}

// Decode copies a validated object into target, a pointer to a struct
// tagged with `mapstructure` names. Unknown keys are ignored.
func Decode(obj Object, target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  target,
		TagName: "mapstructure",
	})
	if err != nil {
		return fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(obj); err != nil {
		return fmt.Errorf("failed to decode arguments: %w", err)
	}
	return nil
}
