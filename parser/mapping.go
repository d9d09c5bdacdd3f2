package parser

import (
	"fmt"

	"github.com/erraggy/apielements/element"
)

// ParseMap returns a MemberTransform for a member whose value is an object
// of user-named entries, such as the schemas of a Components Object.
//
// Every entry is parsed independently with itemParser and wrapped back into a
// member under its original key. An entry that fails to produce a value is
// kept as a key-only member so consumers still see that the key existed,
// while its annotations surface. Object poisoning applies to the whole map.
func ParseMap(state *State, name, key string, itemParser Parser) MemberTransform {
	entry := func(member *element.Element) *ParseResult {
		r := itemParser(member.Value())
		out := Annotations(r.AllAnnotations()...)

		kept := element.NewMemberElement(member.Key(), r.Value())
		kept.SourceMap = member.SourceMap
		return out.Push(kept)
	}

	parseEntries := ParseObject(state, name, entry)

	return func(member *element.Element) *ParseResult {
		value := member.Value()
		if !value.Is(element.KindObject) {
			return state.Warning(fmt.Sprintf("'%s' '%s' is not an object", name, key), locate(value, member))
		}

		r := parseEntries(value)
		if !r.HasValue() {
			return r
		}

		out := r.WithoutValues()
		kept := element.NewMemberElement(member.Key(), r.Value())
		kept.SourceMap = member.SourceMap
		return out.Push(kept)
	}
}
