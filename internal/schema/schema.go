package schema

import (
	"fmt"
	"strings"
)

// Type is the JSON type accepted for a field.
type Type string

// Supported field types.
const (
	TypeString  Type = "string"
	TypeInteger Type = "integer"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeObject  Type = "object"
)

// Object is a decoded JSON object as delivered by the MCP client.
type Object = map[string]any

// Field declares one named input field.
type Field struct {
	Name        string
	Type        Type
	Required    bool
	Description string

	// Enum restricts a string field to a fixed set of values.
	Enum []string

	// Positive requires an integer field to be greater than zero.
	Positive bool

	// Format is advertised in the JSON schema only (e.g. "date-time").
	// Values are not checked against it; the calendar API rejects malformed times.
	Format string

	// Fields holds the nested fields of an object field.
	Fields []Field
}

// Schema is the ordered set of fields an operation accepts.
type Schema struct {
	Fields []Field
}

// New returns a schema with the given fields.
func New(fields ...Field) Schema {
	return Schema{Fields: fields}
}

// String declares a string field.
func String(name, description string, opts ...Option) Field {
	return newField(name, TypeString, description, opts)
}

// Integer declares an integer field.
func Integer(name, description string, opts ...Option) Field {
	return newField(name, TypeInteger, description, opts)
}

// Number declares a number field.
func Number(name, description string, opts ...Option) Field {
	return newField(name, TypeNumber, description, opts)
}

// Boolean declares a boolean field.
func Boolean(name, description string, opts ...Option) Field {
	return newField(name, TypeBoolean, description, opts)
}

// ObjectField declares a nested object field.
func ObjectField(name, description string, fields []Field, opts ...Option) Field {
	f := newField(name, TypeObject, description, opts)
	f.Fields = fields
	return f
}

// Option configures a Field.
type Option func(*Field)

// Required marks the field as mandatory.
func Required() Option {
	return func(f *Field) { f.Required = true }
}

// Enum restricts the allowed values.
func Enum(values ...string) Option {
	return func(f *Field) { f.Enum = values }
}

// Positive requires an integer greater than zero.
func Positive() Option {
	return func(f *Field) { f.Positive = true }
}

// Format sets the advertised string format.
func Format(format string) Option {
	return func(f *Field) { f.Format = format }
}

func newField(name string, typ Type, description string, opts []Option) Field {
	f := Field{Name: name, Type: typ, Description: description}
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// FieldNames returns the top-level field names in declaration order.
func (s Schema) FieldNames() []string {
	names := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		names = append(names, f.Name)
	}
	return names
}

// Problem describes one field that failed validation.
type Problem struct {
	// Path is the dotted field path, e.g. "start.dateTime". Empty for the root.
	Path   string
	Reason string
}

func (p Problem) String() string {
	if p.Path == "" {
		return p.Reason
	}
	return p.Path + ": " + p.Reason
}

// ValidationError lists every problem found in one input.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Problems))
	for _, p := range e.Problems {
		parts = append(parts, p.String())
	}
	return fmt.Sprintf("invalid arguments: %s", strings.Join(parts, "; "))
}
