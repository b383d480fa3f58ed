package validation

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{
		"person.schema.json": &fstest.MapFile{Data: []byte(personSchema)},
	})

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "Robin", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Linus"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "Abigail", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "Pierre", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "Gus", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateBytes([]byte(tt.data), "person.schema.json")
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_UnknownSchema(t *testing.T) {
	v := NewSchemaValidatorFS(fstest.MapFS{})

	err := v.ValidateBytes([]byte(`{}`), "missing.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	v := NewSchemaValidator()
	dir := t.TempDir()

	good := filepath.Join(dir, "bundles.json")
	require.NoError(t, os.WriteFile(good, []byte(`[
		{"room": "Pantry", "name": "Spring Crops Bundle", "reward": "Speed-Gro (20)",
		 "items": ["Parsnip", "Green Bean", "Cauliflower", "Potato"]}
	]`), 0o644))
	assert.NoError(t, v.ValidateFile(good, BundlesSchema))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"room": "", "name": "Empty"}]`), 0o644))
	err := v.ValidateFile(bad, BundlesSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")

	err = v.ValidateFile(filepath.Join(dir, "nope.json"), BundlesSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestEmbeddedSchemasCompile(t *testing.T) {
	v := NewSchemaValidator()

	for _, name := range []string{CropsSchema, FishSchema, NPCsSchema, RecipesSchema, MiningSchema, BundlesSchema} {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, v.ValidateBytes([]byte(`[]`), name))
		})
	}
}

func TestRecipesSchema_RejectsZeroQuantity(t *testing.T) {
	v := NewSchemaValidator()

	err := v.ValidateBytes([]byte(`[
		{"name": "Salad", "ingredients": [{"item": "Leek", "quantity": 0}]}
	]`), RecipesSchema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/0/ingredients/0/quantity")
}
