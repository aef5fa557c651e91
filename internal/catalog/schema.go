package catalog

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const tracksSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name", "lessons"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"name": {"type": "string", "minLength": 1},
			"default": {"type": "boolean"},
			"lessons": {"type": "array", "items": {"type": "string", "minLength": 1}}
		}
	}
}`

const drillsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "track_id", "difficulty", "title", "prompt"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"track_id": {"type": "string", "minLength": 1},
			"difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
			"title": {"type": "string", "minLength": 1},
			"prompt": {"type": "string", "minLength": 1},
			"hints": {"type": "array", "items": {"type": "string"}}
		}
	}
}`

const quizzesSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "track_id", "difficulty", "question", "choices", "answer"],
		"properties": {
			"id": {"type": "string", "minLength": 1},
			"track_id": {"type": "string", "minLength": 1},
			"difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
			"question": {"type": "string", "minLength": 1},
			"choices": {"type": "array", "minItems": 2, "items": {"type": "string"}},
			"answer": {"type": "integer", "minimum": 0},
			"explanation": {"type": "string"}
		}
	}
}`

// validate checks raw catalog JSON against its schema before decoding.
func validate(name, schema string, raw []byte) error {
	def, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(schema)))
	if err != nil {
		return fmt.Errorf("parse schema for %s: %w", name, err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s", name)
	if err := c.AddResource(schemaURL, def); err != nil {
		return fmt.Errorf("add schema resource for %s: %w", name, err)
	}
	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return fmt.Errorf("compile schema for %s: %w", name, err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	if err := compiled.Validate(inst); err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", name, err)
	}
	return nil
}
