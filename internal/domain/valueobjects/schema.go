package valueobjects

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

type SchemaType string

const (
	SchemaTypeObject  SchemaType = "object"
	SchemaTypeArray   SchemaType = "array"
	SchemaTypeString  SchemaType = "string"
	SchemaTypeInteger SchemaType = "integer"
	SchemaTypeNumber  SchemaType = "number"
	SchemaTypeBoolean SchemaType = "boolean"
)

// Schema is a provider-neutral JSON schema used to constrain structured
// generation. Field order follows the Go struct declaration.
type Schema struct {
	Type             SchemaType
	Description      string
	Properties       map[string]*Schema
	PropertyOrdering []string
	Items            *Schema
	Required         []string
}

// NewSchema derives a schema from the Go type of v. JSON tags name the
// properties, a `description` tag documents them, and every field without
// omitempty is required.
func NewSchema(v any) (*Schema, error) {
	t := reflect.TypeOf(v)
	if t == nil {
		return nil, errors.New("schema value is nil")
	}

	return schemaForType(t, map[reflect.Type]bool{})
}

// MustSchema is like NewSchema but panics on unsupported types. Intended for
// package-level schema variables.
func MustSchema(v any) *Schema {
	s, err := NewSchema(v)
	if err != nil {
		panic(err)
	}
	return s
}

// WithDescription returns a shallow copy carrying a top-level description.
func (s *Schema) WithDescription(description string) *Schema {
	c := *s
	c.Description = description
	return &c
}

func schemaForType(t reflect.Type, visited map[reflect.Type]bool) (*Schema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		if visited[t] {
			return nil, fmt.Errorf("recursive type not supported: %s", t.String())
		}
		visited[t] = true
		defer delete(visited, t)

		out := &Schema{
			Type:       SchemaTypeObject,
			Properties: map[string]*Schema{},
		}

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}

			name, omitempty, skip := parseJSONTag(f)
			if skip {
				continue
			}

			fieldSchema, err := schemaForType(f.Type, visited)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}

			if desc := f.Tag.Get("description"); desc != "" {
				fieldSchema.Description = desc
			}

			out.Properties[name] = fieldSchema
			out.PropertyOrdering = append(out.PropertyOrdering, name)

			if !omitempty && f.Type.Kind() != reflect.Pointer {
				out.Required = append(out.Required, name)
			}
		}
		return out, nil

	case reflect.String:
		return &Schema{Type: SchemaTypeString}, nil
	case reflect.Bool:
		return &Schema{Type: SchemaTypeBoolean}, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: SchemaTypeInteger}, nil

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: SchemaTypeNumber}, nil

	case reflect.Slice, reflect.Array:
		items, err := schemaForType(t.Elem(), visited)
		if err != nil {
			return nil, err
		}
		return &Schema{Type: SchemaTypeArray, Items: items}, nil

	default:
		return nil, fmt.Errorf("unsupported kind: %s", t.Kind())
	}
}

func parseJSONTag(f reflect.StructField) (name string, omitempty bool, skip bool) {
	tag := f.Tag.Get("json")
	if tag == "-" {
		return "", false, true
	}
	if tag == "" {
		return f.Name, false, false
	}

	parts := strings.Split(tag, ",")
	name = parts[0]
	if name == "" {
		name = f.Name
	}

	for _, p := range parts[1:] {
		if p == "omitempty" {
			omitempty = true
		}
	}

	return name, omitempty, false
}
