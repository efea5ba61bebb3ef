package generation

import "context"

// Type names a JSON schema node type.
type Type string

// Schema node types understood by every adapter.
const (
	TypeObject  Type = "object"
	TypeArray   Type = "array"
	TypeString  Type = "string"
	TypeInteger Type = "integer"
)

// Schema declares the JSON shape a response must follow.
type Schema struct {
	Type       Type
	Properties map[string]*Schema
	// Order of Properties when the adapter needs one; defaults to Required.
	PropertyOrder []string
	Items         *Schema
	Required      []string
}

// Object builds an object schema whose listed properties are all required.
func Object(props map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: props, Required: required, PropertyOrder: required}
}

// ArrayOf builds an array schema.
func ArrayOf(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a string schema.
func String() *Schema { return &Schema{Type: TypeString} }

// Integer builds an integer schema.
func Integer() *Schema { return &Schema{Type: TypeInteger} }

// Request is a single generation call.
type Request struct {
	Prompt string
	// Schema, when set, asks for application/json output matching it.
	Schema *Schema
	// UseMaps enables the map grounding tool.
	UseMaps bool
}

// Citation is a map record the model grounded its answer on.
type Citation struct {
	Title string
	URI   string
}

// Response is the model's answer.
type Response struct {
	Text      string
	Citations []Citation
}

// Model generates content from a prompt.
// This interface is the port between the content service and external
// LLM services, following the hexagonal architecture pattern.
type Model interface {
	// Generate performs one request. Implementations honour ctx
	// cancellation and wrap failures with the sentinel errors of this
	// package.
	Generate(ctx context.Context, req Request) (*Response, error)
}
