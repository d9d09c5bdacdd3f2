// Package apielements converts OpenAPI documents into API Elements trees.
//
// An API Elements tree is a normalized, tagged element tree annotated with
// non-fatal diagnostics. The library is split into a generic engine and the
// concrete OpenAPI 3 parsers built on top of it:
//
//   - element: the tagged element tree, named-type lookup tables, YAML loading
//     and refract JSON serialization
//   - parser: annotations, parse results, pipelines, the object/array/map
//     combinators, per-parse State and component dereferencing
//   - materializer: computes representative example values from
//     schema-shaped elements
//   - oas3: OpenAPI 3.0 object parsers
//
// # Quick Start
//
// Parse an OpenAPI document:
//
//	import "github.com/erraggy/apielements/oas3"
//
//	result, err := oas3.ParseWithOptions(oas3.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range result.Warnings() {
//		fmt.Println(w)
//	}
//
// Materialize an example for a component schema:
//
//	import "github.com/erraggy/apielements/materializer"
//
//	schema, table, _ := result.Schemas().Resolve("Pet")
//	value, provenance, ok := materializer.MaterializeWithProvenance(schema, table)
//
// The CLI in cmd/apielements wraps both operations and can also serve them
// over the Model Context Protocol.
package apielements
