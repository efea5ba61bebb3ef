package gemini

import (
	"github.com/phrazzld/timension/internal/generation"
	"google.golang.org/genai"
)

var schemaTypes = map[generation.Type]genai.Type{
	generation.TypeObject:  genai.TypeObject,
	generation.TypeArray:   genai.TypeArray,
	generation.TypeString:  genai.TypeString,
	generation.TypeInteger: genai.TypeInteger,
}

// toGenaiSchema converts a generation schema tree into its genai form.
func toGenaiSchema(s *generation.Schema) *genai.Schema {
	if s == nil {
		return nil
	}

	out := &genai.Schema{
		Type:     schemaTypes[s.Type],
		Required: s.Required,
		Items:    toGenaiSchema(s.Items),
	}

	if len(s.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(s.Properties))
		for name, prop := range s.Properties {
			out.Properties[name] = toGenaiSchema(prop)
		}
		out.PropertyOrdering = s.PropertyOrder
	}

	return out
}
