package materializer

import (
	"fmt"

	"github.com/erraggy/apielements/element"
)

// Provenance names the rule that produced a materialized value.
type Provenance string

const (
	// ProvenanceContent means the element's own content was used.
	ProvenanceContent Provenance = "content"
	// ProvenanceSample means the first sample was used.
	ProvenanceSample Provenance = "sample"
	// ProvenanceDefault means the default was used.
	ProvenanceDefault Provenance = "default"
	// ProvenanceNullable means the element is nullable and null was used.
	ProvenanceNullable Provenance = "nullable"
	// ProvenanceGenerated means a value was synthesized from the kind.
	ProvenanceGenerated Provenance = "generated"
)

// Materialize returns a representative value for el. The table resolves refs
// and named types and may be nil. ok is false when no value can be produced.
func Materialize(el *element.Element, table element.Table) (value any, ok bool) {
	value, _, ok = MaterializeWithProvenance(el, table)
	return value, ok
}

// MaterializeWithProvenance is Materialize that also reports which rule
// produced the value. For refs and named types the provenance is the one of
// the resolved type.
func MaterializeWithProvenance(el *element.Element, table element.Table) (any, Provenance, bool) {
	return valueOf(el, table, false)
}

// valueOf applies the precedence rules. fixed is true when an enclosing
// element is marked fixed.
func valueOf(el *element.Element, table element.Table, fixed bool) (any, Provenance, bool) {
	if el == nil {
		return nil, "", false
	}
	fixed = fixed || el.TypeAttributes.Has(element.Fixed)
	isArray := baseKind(el, table) == element.KindArray

	if el.HasContent() && !(isArray && isVacuous(el)) {
		if v, ok := reduce(el, table, fixed); ok {
			return v, ProvenanceContent, true
		}
	}

	if len(el.Samples) > 0 {
		if v, ok := reduce(el.Samples[0], table, fixed); ok {
			return v, ProvenanceSample, true
		}
	}

	if el.Default != nil {
		if v, ok := reduce(el.Default, table, fixed); ok {
			return v, ProvenanceDefault, true
		}
	}

	if isArray && el.Len() > 0 {
		if v, ok := reduce(el, table, fixed); ok {
			return v, ProvenanceContent, true
		}
	}

	if el.TypeAttributes.Has(element.Nullable) {
		return nil, ProvenanceNullable, true
	}

	if name, ok := referencedName(el); ok {
		if target, sub, found := table.Resolve(name); found {
			if v, p, ok := valueOf(target, sub, fixed); ok {
				return v, p, true
			}
		}
	}

	if el.Is(element.KindEnum) && len(el.Enumerations) > 0 {
		if v, _, ok := valueOf(el.Enumerations[0], table, fixed); ok {
			return v, ProvenanceGenerated, true
		}
	}

	if v, ok := generate(el, isArray); ok {
		return v, ProvenanceGenerated, true
	}
	return nil, "", false
}

// reduce turns a chosen element into a value using its own content.
func reduce(el *element.Element, table element.Table, fixed bool) (any, bool) {
	if el == nil {
		return nil, false
	}
	fixed = fixed || el.TypeAttributes.Has(element.Fixed)

	switch el.Kind {
	case element.KindNull:
		return nil, true
	case element.KindBoolean:
		b, ok := el.BoolValue()
		return b, ok
	case element.KindNumber:
		n, ok := el.NumberValue()
		return n, ok
	case element.KindString:
		s, ok := el.StringValue()
		return s, ok
	case element.KindEnum:
		v, _, ok := valueOf(el.Selected(), table, fixed)
		return v, ok
	case element.KindMember, element.KindRef:
		return nil, false
	}

	if _, ok := el.Content.(element.Items); !ok {
		return nil, false
	}
	if baseKind(el, table) == element.KindArray {
		return reduceArray(el, table, fixed)
	}
	return reduceObject(el, table, fixed)
}

func reduceObject(el *element.Element, table element.Table, fixed bool) (any, bool) {
	obj := Object{}
	for _, item := range el.Items() {
		if !item.Is(element.KindMember) {
			// Named types mixed into an object contribute their own members.
			v, _, ok := valueOf(item, table, fixed)
			if nested, isObj := v.(Object); ok && isObj {
				obj = append(obj, nested...)
				continue
			}
			if fixed {
				return nil, false
			}
			continue
		}

		memberFixed := fixed || item.TypeAttributes.Has(element.Fixed)
		field, ok := reduceMember(item, table, memberFixed)
		if ok {
			obj = append(obj, field)
			continue
		}

		// Every member of a fixed object is required.
		attrs := item.TypeAttributes
		skippable := !memberFixed && (attrs.Has(element.Optional) || !attrs.Has(element.Required))
		if !skippable {
			return nil, false
		}
	}
	return obj, true
}

func reduceMember(member *element.Element, table element.Table, fixed bool) (Field, bool) {
	key, _, ok := valueOf(member.Key(), table, fixed)
	if !ok {
		return Field{}, false
	}
	value, _, ok := valueOf(member.Value(), table, fixed)
	if !ok {
		return Field{}, false
	}
	name, isString := key.(string)
	if !isString {
		name = fmt.Sprint(key)
	}
	return Field{Key: name, Value: value}, true
}

func reduceArray(el *element.Element, table element.Table, fixed bool) (any, bool) {
	strict := fixed || el.TypeAttributes.Has(element.FixedType)
	out := make([]any, 0, el.Len())
	for _, item := range el.Items() {
		v, _, ok := valueOf(item, table, fixed)
		if !ok {
			if strict {
				return nil, false
			}
			continue
		}
		out = append(out, v)
	}
	return out, true
}

// generate synthesizes a value from the kind alone. Only elements without
// content, or arrays with empty content, get a synthesized value.
func generate(el *element.Element, isArray bool) (any, bool) {
	if el.HasContent() && !(isArray && el.Len() == 0) {
		return nil, false
	}
	switch el.Kind {
	case element.KindBoolean:
		return false, true
	case element.KindNumber:
		return float64(0), true
	case element.KindString:
		return "", true
	case element.KindNull:
		return nil, true
	case element.KindObject:
		return Object{}, true
	case element.KindArray:
		return []any{}, true
	}
	if isArray && el.HasContent() {
		return []any{}, true
	}
	return nil, false
}

// referencedName returns the lookup table name of a ref or named type.
func referencedName(el *element.Element) (string, bool) {
	if el.Is(element.KindRef) {
		return el.StringValue()
	}
	if el.Kind.IsNamed() {
		return string(el.Kind), true
	}
	return "", false
}

// baseKind follows named types through table down to a base kind. A name
// that cannot be resolved is returned as is.
func baseKind(el *element.Element, table element.Table) element.Kind {
	kind := el.Kind
	for kind.IsNamed() {
		target, sub, ok := table.Resolve(string(kind))
		if !ok {
			break
		}
		kind, table = target.Kind, sub
	}
	return kind
}

// isVacuous reports whether every item of an array is a primitive without a
// value. An empty array is vacuous.
func isVacuous(el *element.Element) bool {
	for _, item := range el.Items() {
		if !item.IsValueless() {
			return false
		}
	}
	return true
}
