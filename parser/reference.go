package parser

import (
	"fmt"
	"slices"
	"strings"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/oaserrors"
)

// componentsPrefix is the only reference form that can be dereferenced.
const componentsPrefix = "#/components/"

// Dereference resolves ref, a string element such as
// "#/components/schemas/Pet", against the component registry of category.
//
// With placeholder set, the result is a named-type element whose kind is the
// component id, leaving structural resolution to whoever holds the lookup
// table. Otherwise the registered entry is returned, following entries whose
// kind names another entry of the same category. A chain that revisits an
// entry yields a single error describing the whole cycle.
//
// Every failure is an error annotation carrying a *oaserrors.ReferenceError.
func (s *State) Dereference(ref *element.Element, category string, placeholder bool) *ParseResult {
	raw, ok := ref.StringValue()
	if !ok {
		return referenceError(ref, "", category, "'$ref' is not a string")
	}

	if !strings.HasPrefix(raw, "#") {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' is not a local reference", raw))
	}

	refCategory, id, ok := splitComponentRef(raw)
	if !ok {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' is not a reference to a component", raw))
	}
	if refCategory != category {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' is not a reference to '%s'", raw, category))
	}

	if !s.HasCategory(category) {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' category not defined", category))
	}
	if _, ok := s.Lookup(category, id); !ok {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' reference not defined", raw))
	}

	s.logger.Debug("dereferencing component", "ref", raw, "placeholder", placeholder)

	if placeholder {
		named := element.NewNamed(id)
		named.SourceMap = ref.SourceMap
		return NewParseResult(named)
	}

	return s.unwrap(ref, raw, category, id, nil)
}

// unwrap follows same-category named kinds starting at id. path holds the ids
// already visited on the way.
func (s *State) unwrap(ref *element.Element, raw, category, id string, path []string) *ParseResult {
	if slices.Contains(path, id) {
		chain := append(slices.Clone(path), id)
		a := NewError(fmt.Sprintf("'%s' contains a circular reference: %s", raw, strings.Join(chain, " -> ")), ref)
		a.Err = &oaserrors.ReferenceError{Ref: raw, Category: category, IsCircular: true, Chain: chain}
		s.logger.Debug("circular reference", "ref", raw, "chain", chain)
		return Annotations(a)
	}

	entry, ok := s.Lookup(category, id)
	if !ok {
		return referenceError(ref, raw, category, fmt.Sprintf("'%s' reference not defined", raw))
	}

	next := string(entry.Kind)
	if entry.Kind.IsNamed() {
		if _, exists := s.Lookup(category, next); exists {
			return s.unwrap(ref, raw, category, next, append(path, id))
		}
	}

	return NewParseResult(entry)
}

func referenceError(ref *element.Element, raw, category, message string) *ParseResult {
	a := NewError(message, ref)
	a.Err = &oaserrors.ReferenceError{Ref: raw, Category: category, Message: message}
	return Annotations(a)
}

// splitComponentRef splits "#/components/<category>/<id>" and unescapes the
// JSON Pointer tokens of both parts.
func splitComponentRef(ref string) (category, id string, ok bool) {
	rest, found := strings.CutPrefix(ref, componentsPrefix)
	if !found {
		return "", "", false
	}
	parts := strings.Split(rest, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", false
	}
	return unescapeJSONPointer(parts[0]), unescapeJSONPointer(parts[1]), true
}

// unescapeJSONPointer decodes "~1" to "/" and "~0" to "~", in that order.
func unescapeJSONPointer(token string) string {
	token = strings.ReplaceAll(token, "~1", "/")
	return strings.ReplaceAll(token, "~0", "~")
}
