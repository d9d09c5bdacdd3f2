// Package materializer computes one representative value from a
// schema-shaped element, for example to synthesize a message body.
//
// The value of an element is chosen by the first applicable rule:
//
//  1. its literal content, unless it is an array whose items are all
//     valueless primitives
//  2. its first sample
//  3. its default
//  4. its literal content again, if it is a non-empty array
//  5. null, if it is nullable
//  6. for a ref or named type, the value of the type it resolves to
//  7. for an enum, the value of its first enumeration
//  8. a trivial value for its kind: false, 0, "", null, or an empty
//     collection
//
// A rule whose candidate cannot be reduced to a value falls through to the
// next one. Objects drop members that fail to resolve unless the member is
// required or the object is fixed, in which case the whole object fails.
// Arrays drop unresolved items unless they are fixed or fixedType.
//
// Values are plain Go data: nil, bool, float64, string, []any and [Object],
// which keeps member order when encoded with [ToJSON] or [ToYAML]:
//
//	value, provenance, ok := materializer.MaterializeWithProvenance(schema, state.Table("schemas"))
//	if ok {
//		body, _ := materializer.ToJSON(value)
//		fmt.Printf("%s (%s)\n", body, provenance)
//	}
package materializer
