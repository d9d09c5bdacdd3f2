package parser

import "github.com/erraggy/apielements/element"

// Step is one stage of a pipeline. It receives the current value elements
// spread as arguments, so a step can combine values produced earlier.
type Step func(values ...*element.Element) *ParseResult

// Lift adapts an element-returning function into a Step. A nil element
// produces an empty result, which stops the pipeline.
func Lift(fn func(values ...*element.Element) *element.Element) Step {
	return func(values ...*element.Element) *ParseResult {
		return NewParseResult(fn(values...))
	}
}

// FromParser adapts a single-argument Parser into a Step that receives the
// first current value.
func FromParser(p Parser) Step {
	return func(values ...*element.Element) *ParseResult {
		var first *element.Element
		if len(values) > 0 {
			first = values[0]
		}
		return p(first)
	}
}

// Pipe runs steps in order starting from seed.
//
// Before every step the accumulator must hold at least one value and no error
// annotation; otherwise the remaining steps are skipped and the accumulator is
// returned as is. Each step's values replace the accumulated values while its
// annotations are appended to everything collected so far, so annotations are
// never lost between steps.
func Pipe(seed *ParseResult, steps ...Step) *ParseResult {
	acc := NewParseResult().Concat(seed)
	for _, step := range steps {
		if !acc.canContinue() {
			break
		}
		next := step(acc.Values()...)
		if next == nil {
			next = NewParseResult()
		}
		acc = &ParseResult{
			values:      append([]*element.Element(nil), next.values...),
			annotations: append(append([]*Annotation(nil), acc.annotations...), next.annotations...),
		}
	}
	return acc
}

// PipeElement is Pipe seeded with a single element.
func PipeElement(seed *element.Element, steps ...Step) *ParseResult {
	return Pipe(NewParseResult(seed), steps...)
}

// Chain composes steps into a single reusable Step with Pipe semantics.
func Chain(steps ...Step) Step {
	return func(values ...*element.Element) *ParseResult {
		return Pipe(NewParseResult(values...), steps...)
	}
}

// Compose turns steps into a Parser with Pipe semantics.
func Compose(steps ...Step) Parser {
	return func(el *element.Element) *ParseResult {
		return PipeElement(el, steps...)
	}
}
