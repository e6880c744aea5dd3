package external

import (
	genai_std "google.golang.org/genai"

	"stylist-demo/internal/domain/valueobjects"
)

var schemaTypes = map[valueobjects.SchemaType]genai_std.Type{
	valueobjects.SchemaTypeObject:  genai_std.TypeObject,
	valueobjects.SchemaTypeArray:   genai_std.TypeArray,
	valueobjects.SchemaTypeString:  genai_std.TypeString,
	valueobjects.SchemaTypeInteger: genai_std.TypeInteger,
	valueobjects.SchemaTypeNumber:  genai_std.TypeNumber,
	valueobjects.SchemaTypeBoolean: genai_std.TypeBoolean,
}

// toGenAISchema converts the domain schema into the SDK representation.
func toGenAISchema(s *valueobjects.Schema) *genai_std.Schema {
	if s == nil {
		return nil
	}

	out := &genai_std.Schema{
		Type:        schemaTypes[s.Type],
		Description: s.Description,
		Items:       toGenAISchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai_std.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenAISchema(prop)
		}
	}
	if len(s.PropertyOrdering) > 0 {
		out.PropertyOrdering = append([]string(nil), s.PropertyOrdering...)
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}

	return out
}
