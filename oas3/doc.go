// Package oas3 converts OpenAPI 3.0 documents into API Elements.
//
// The document is loaded into a generic element tree first, so every
// annotation can point at the line and column it came from. Each OpenAPI
// object is then parsed with the combinators of the parser package: a
// problem that makes an object unusable is an error and discards that
// object together with everything enclosing it, while anything that can be
// skipped is a warning.
//
// # Quick Start
//
//	result, err := oas3.ParseWithOptions(
//		oas3.WithFilePath("openapi.yaml"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.HasError() {
//		for _, a := range result.Errors() {
//			fmt.Println(a)
//		}
//		return
//	}
//	api := result.API()
//
// # Output
//
// The API element is a category with class "api" titled after the Info
// Object. It holds, in order:
//
//   - a copy element with the API description
//   - a category with class "dataStructures" holding one dataStructure per
//     component schema
//   - a category with class "authSchemes" holding the security schemes
//   - one resource per path, titled with the path template
//
// Each resource holds a transition per operation and each transition holds
// one httpTransaction per response. Response bodies come from the media type
// example or, for JSON media types, are generated from the schema with the
// materializer package; generated assets carry the class "generated".
//
// Schemas referencing other component schemas become named types. Use
// Result.Schemas to obtain the lookup table needed to resolve them.
//
// # Supported Versions
//
// Any 3.x version is accepted. Versions other than 3.0 produce a warning
// since their additions are not understood.
package oas3
