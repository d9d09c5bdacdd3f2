package mcpserver

import (
	"context"
	"fmt"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/parser"
	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type parseInput struct {
	Spec           specInput `json:"spec"                      jsonschema:"The OpenAPI 3 document to parse"`
	Full           bool      `json:"full,omitempty"            jsonschema:"Also return the refract JSON of the API element"`
	GenerateBodies *bool     `json:"generate_bodies,omitempty" jsonschema:"Generate JSON message bodies from schemas (default from APIELEMENTS_GENERATE_BODIES)"`
}

type annotationSummary struct {
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Location    string `json:"location,omitempty"`
	Occurrences int    `json:"occurrences,omitempty"`
}

type parseOutput struct {
	Title              string              `json:"title,omitempty"`
	Version            string              `json:"version,omitempty"`
	Valid              bool                `json:"valid"`
	ResourceCount      int                 `json:"resource_count"`
	TransitionCount    int                 `json:"transition_count"`
	DataStructureCount int                 `json:"data_structure_count"`
	ErrorCount         int                 `json:"error_count"`
	WarningCount       int                 `json:"warning_count"`
	Annotations        []annotationSummary `json:"annotations,omitempty"`
	Truncated          bool                `json:"truncated,omitempty"`
	API                string              `json:"api,omitempty"`
}

func handleParse(_ context.Context, _ *mcp.CallToolRequest, input parseInput) (*mcp.CallToolResult, parseOutput, error) {
	generateBodies := cfg.GenerateBodies
	if input.GenerateBodies != nil {
		generateBodies = *input.GenerateBodies
	}

	result, err := input.Spec.resolve(generateBodies)
	if err != nil {
		return errResult(err), parseOutput{}, nil
	}

	output := parseOutput{
		Title:        result.Title,
		Version:      result.Version,
		Valid:        !result.HasError(),
		ErrorCount:   len(result.Errors()),
		WarningCount: len(result.Warnings()),
	}

	annotations := result.AllAnnotations()
	if len(annotations) > cfg.MaxAnnotations {
		annotations = annotations[:cfg.MaxAnnotations]
		output.Truncated = true
	}
	output.Annotations = summarizeAnnotations(annotations)

	api := result.API()
	if api == nil {
		return nil, output, nil
	}

	output.ResourceCount = len(element.FindByKind(api, "resource"))
	output.TransitionCount = len(element.FindByKind(api, "transition"))
	output.DataStructureCount = len(result.Schemas())

	if input.Full {
		data, err := json.Marshal(api)
		if err != nil {
			return errResult(fmt.Errorf("failed to encode API element: %w", err)), parseOutput{}, nil
		}
		output.API = string(data)
	}

	return nil, output, nil
}

func summarizeAnnotations(annotations []*parser.Annotation) []annotationSummary {
	if len(annotations) == 0 {
		return nil
	}
	out := make([]annotationSummary, 0, len(annotations))
	for _, a := range annotations {
		s := annotationSummary{
			Severity: a.Severity.String(),
			Message:  a.Message,
			Location: a.Location(),
		}
		if a.Occurrences > 1 {
			s.Occurrences = a.Occurrences
		}
		out = append(out, s)
	}
	return out
}
