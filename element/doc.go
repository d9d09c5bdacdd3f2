// Package element provides the API Elements tree consumed and produced by the
// parser and materializer packages.
//
// An [Element] is a tagged node. Its [Kind] is either one of the base kinds
// (boolean, number, string, null, array, object, enum, member, ref) or a named
// type: any other string, resolved indirectly through a lookup [Table].
//
// Content is a sealed union:
//
//	Bool, Number, String   primitive literals
//	Items                  ordered children of arrays, objects, enum option lists
//	*Member                the key/value pair of a member element
//	*Element               the selected value of an enum
//
// A nil Content means the element has no value. Array and object order is
// significant and is preserved by every function in this module.
//
// The optional attribute vocabulary is closed, so it is modelled as explicit
// fields (TypeAttributes, Default, Samples, Enumerations, SourceMap) rather
// than an open map.
package element
