package api

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

const errorSchemaURL = "schema://server-error.json"

// errorSchema describes the error payload the backend sends with non-2xx
// responses. Only message is required.
var errorSchema = map[string]any{
	"type":     "object",
	"required": []string{"message"},
	"properties": map[string]any{
		"type":            map[string]any{"type": "string"},
		"server_error_id": map[string]any{"type": []string{"string", "number"}},
		"stack":           map[string]any{"type": "string"},
		"message":         map[string]any{"type": "string", "minLength": 1},
		"status_code":     map[string]any{"type": "integer"},
		"url":             map[string]any{"type": "string"},
	},
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validateErrorPayload checks raw against errorSchema.
func validateErrorPayload(raw json.RawMessage) error {
	if len(raw) == 0 {
		return fmt.Errorf("empty error body")
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	sch, err := errorPayloadSchema()
	if err != nil {
		return err
	}
	if err := sch.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func errorPayloadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler wants a decoded JSON value, not Go maps with typed
		// slices, so round-trip the definition.
		defBytes, err := json.Marshal(errorSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource(errorSchemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(errorSchemaURL)
	})
	return compiledSchema, compileErr
}
