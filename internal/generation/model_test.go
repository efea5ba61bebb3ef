package generation_test

import (
	"testing"

	"github.com/phrazzld/timension/internal/generation"
	"github.com/stretchr/testify/assert"
)

func TestObjectSchema(t *testing.T) {
	t.Parallel()

	s := generation.Object(map[string]*generation.Schema{
		"year":  generation.String(),
		"count": generation.Integer(),
	}, "year", "count")

	assert.Equal(t, generation.TypeObject, s.Type)
	assert.Equal(t, []string{"year", "count"}, s.Required)
	assert.Equal(t, []string{"year", "count"}, s.PropertyOrder)
	assert.Equal(t, generation.TypeInteger, s.Properties["count"].Type)
}

func TestArraySchema(t *testing.T) {
	t.Parallel()

	s := generation.ArrayOf(generation.String())

	assert.Equal(t, generation.TypeArray, s.Type)
	assert.Equal(t, generation.TypeString, s.Items.Type)
	assert.Nil(t, s.Properties)
}
