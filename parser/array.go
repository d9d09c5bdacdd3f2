package parser

import (
	"fmt"

	"github.com/erraggy/apielements/element"
)

// ParseArray returns a Parser that applies transform to every item of an
// array element.
//
// Items whose transform yields no value are dropped. If any item produces an
// error annotation the array is discarded: the result keeps every annotation
// but holds no value.
func ParseArray(state *State, name string, transform Parser) Parser {
	return func(el *element.Element) *ParseResult {
		if !el.Is(element.KindArray) {
			return state.Warning(fmt.Sprintf("'%s' is not an array", name), el)
		}

		array := element.NewArray()
		array.SourceMap = el.SourceMap
		combined := NewParseResult()
		for _, item := range el.Items() {
			r := transform(item)
			combined.Annotate(r.AllAnnotations()...)
			array.Append(r.Values()...)
		}

		if combined.HasError() {
			return combined
		}
		return combined.Push(array)
	}
}
