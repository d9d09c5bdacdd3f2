// Package parser provides the generic engine beneath every concrete API
// Elements object parser: annotated parse results, pipelines, the object,
// array and map combinators, and component reference resolution.
//
// # Parse Results
//
// Every parser returns a [ParseResult]: at most one value element plus the
// annotations collected while producing it. An annotation is either an error
// or a warning:
//
//   - An error discards the immediately enclosing object or array. Callers
//     must check [ParseResult.HasError] before trusting a value.
//   - A warning is attached to the result and parsing continues. Identical
//     warning text is coalesced within one parse: [State.Warning] increments
//     [Annotation.Occurrences] on the first annotation instead of adding a
//     second one.
//
// # Pipelines
//
// [Pipe] chains steps. Each step receives the values produced by the previous
// step; the first step that leaves an error or no value stops the chain, and
// every annotation collected so far is kept:
//
//	r := parser.PipeElement(member.Value(),
//		parser.FromParser(parseVersion),
//		parser.Lift(checkSupported),
//	)
//
// # Combinators
//
// [ParseObject] transforms each member of an object, enforcing required keys
// before and after the transformation:
//
//	parseInfo := parser.ParseObject(state, "Info Object", parser.ByKey(
//		map[string]parser.MemberTransform{
//			"title":   parser.ParseString(state, "Info Object", true),
//			"version": parser.ParseString(state, "Info Object", true),
//		},
//		parser.UnsupportedKey(state, "Info Object"),
//	), parser.WithRequiredKeys("title", "version"))
//
// [ParseArray] and [ParseMap] apply the same poisoning rule to arrays and to
// maps of user-named entries.
//
// # Component References
//
// A [State] is created per top-level parse. Component ids are registered as
// skeletons before any component is parsed, so [State.Dereference] can resolve
// forward and circular references. With a placeholder the reference becomes a
// named-type element; without one, same-category aliases are unwrapped and a
// cycle is reported as one error naming the full chain:
//
//	state.RegisterComponents("schemas", "A", "B")
//	r := state.Dereference(element.NewString("#/components/schemas/A"), "schemas", false)
//
// # Logging
//
// [State] logs registrations and dereferences at debug level through the
// [Logger] interface. Use [NewSlogAdapter] to route them to log/slog.
package parser
