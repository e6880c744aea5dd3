package valueobjects

import (
	"encoding/json"
	"fmt"
	"math"
)

// Validate checks that data is JSON conforming to the schema: types match and
// every required property is present and non-null. Unknown properties are
// tolerated.
func (s *Schema) Validate(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return s.validateValue(v, "$")
}

func (s *Schema) validateValue(v any, path string) error {
	switch s.Type {
	case SchemaTypeObject:
		obj, ok := v.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object, got %s", path, jsonKind(v))
		}
		for _, name := range s.Required {
			field, present := obj[name]
			if !present || field == nil {
				return fmt.Errorf("%s: missing required property %q", path, name)
			}
		}
		for name, prop := range s.Properties {
			field, present := obj[name]
			if !present || field == nil {
				continue
			}
			if err := prop.validateValue(field, path+"."+name); err != nil {
				return err
			}
		}
	case SchemaTypeArray:
		arr, ok := v.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array, got %s", path, jsonKind(v))
		}
		if s.Items == nil {
			return nil
		}
		for i, elem := range arr {
			if err := s.Items.validateValue(elem, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	case SchemaTypeString:
		if _, ok := v.(string); !ok {
			return fmt.Errorf("%s: expected string, got %s", path, jsonKind(v))
		}
	case SchemaTypeBoolean:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("%s: expected boolean, got %s", path, jsonKind(v))
		}
	case SchemaTypeNumber:
		if _, ok := v.(float64); !ok {
			return fmt.Errorf("%s: expected number, got %s", path, jsonKind(v))
		}
	case SchemaTypeInteger:
		n, ok := v.(float64)
		if !ok || n != math.Trunc(n) {
			return fmt.Errorf("%s: expected integer, got %s", path, jsonKind(v))
		}
	}
	return nil
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
