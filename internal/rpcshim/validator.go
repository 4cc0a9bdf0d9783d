package rpcshim

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas
var schemaFiles embed.FS

type validator struct {
	schemas map[string]*jsonschema.Schema
}

var schemaNames = []string{
	"evaluate_hand",
	"equity",
	"cfr_new",
	"cfr_train",
	"cfr_strategy",
	"mcts_new",
	"mcts_search",
	"eqr",
}

func newValidator() (*validator, error) {
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020

	schemas := make(map[string]*jsonschema.Schema, len(schemaNames))
	for _, name := range schemaNames {
		path := "schemas/" + name + ".json"
		data, err := schemaFiles.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("rpcshim: read schema %s: %w", name, err)
		}

		url := "https://pokersolver.internal/schemas/" + name + ".json"
		if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("rpcshim: add schema %s: %w", name, err)
		}
		schema, err := compiler.Compile(url)
		if err != nil {
			return nil, fmt.Errorf("rpcshim: compile schema %s: %w", name, err)
		}
		schemas[name] = schema
	}

	return &validator{schemas: schemas}, nil
}

func (v *validator) validate(op string, data []byte) (map[string]any, error) {
	schema, ok := v.schemas[op]
	if !ok {
		return nil, fmt.Errorf("rpcshim: unknown operation %q", op)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("rpcshim: invalid JSON: %w", err)
	}

	if err := schema.Validate(payload); err != nil {
		return nil, fmt.Errorf("rpcshim: %s request failed validation: %w", op, err)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("rpcshim: %s request must be a JSON object", op)
	}
	return obj, nil
}
