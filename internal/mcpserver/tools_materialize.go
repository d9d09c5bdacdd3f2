package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/apielements/materializer"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type materializeInput struct {
	Spec   specInput `json:"spec"   jsonschema:"The OpenAPI 3 document holding the schema"`
	Schema string    `json:"schema" jsonschema:"Name of the component schema, e.g. Pet"`
}

type materializeOutput struct {
	Schema     string `json:"schema"`
	Provenance string `json:"provenance"`
	Value      string `json:"value"`
}

func handleMaterialize(_ context.Context, _ *mcp.CallToolRequest, input materializeInput) (*mcp.CallToolResult, materializeOutput, error) {
	if input.Schema == "" {
		return errResult(fmt.Errorf("schema is required")), materializeOutput{}, nil
	}

	result, err := input.Spec.resolve(cfg.GenerateBodies)
	if err != nil {
		return errResult(err), materializeOutput{}, nil
	}
	if result.HasError() {
		return errResult(fmt.Errorf("document has %d error(s); first: %s", len(result.Errors()), result.Errors()[0].Message)), materializeOutput{}, nil
	}

	schema, table, ok := result.Schemas().Resolve(input.Schema)
	if !ok {
		return errResult(fmt.Errorf("schema %q not found in components", input.Schema)), materializeOutput{}, nil
	}

	value, provenance, ok := materializer.MaterializeWithProvenance(schema, table)
	if !ok {
		return errResult(fmt.Errorf("no value can be produced for schema %q", input.Schema)), materializeOutput{}, nil
	}

	data, err := materializer.ToJSON(value)
	if err != nil {
		return errResult(err), materializeOutput{}, nil
	}

	return nil, materializeOutput{
		Schema:     input.Schema,
		Provenance: string(provenance),
		Value:      string(data),
	}, nil
}
