package oas3

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/oaserrors"
	"github.com/erraggy/apielements/parser"
)

func (p *documentParser) parseComponents(member *element.Element) *parser.ParseResult {
	s := p.state
	parseComponents := parser.ParseObject(s, componentsObject, parser.ByKey(
		map[string]parser.MemberTransform{
			categorySchemas:         p.defineComponents(categorySchemas, p.parseSchema, p.checkAliases(categorySchemas)),
			categoryResponses:       p.defineComponents(categoryResponses, p.parseResponse),
			categorySecuritySchemes: p.parseSecuritySchemes,
		},
		parser.UnsupportedKey(s, componentsObject),
	), parser.WithOrderedKeys(categorySchemas))

	return parseComponents(member.Value())
}

// defineComponents parses a map of components and defines every parsed entry
// in the registry under its key. checks run once every entry is defined.
func (p *documentParser) defineComponents(category string, item parser.Parser, checks ...parser.Step) parser.MemberTransform {
	s := p.state
	parseMap := parser.ParseMap(s, componentsObject, category, item)

	define := func(values ...*element.Element) *element.Element {
		m := values[0]
		for _, entry := range m.Value().Items() {
			if v := entry.Value(); v != nil {
				v.ID = entry.KeyString()
				s.Define(category, v.ID, v)
			}
		}
		return m
	}

	return func(member *element.Element) *parser.ParseResult {
		steps := append([]parser.Step{parser.Lift(define)}, checks...)
		return parser.Pipe(parseMap(member), steps...)
	}
}

// checkAliases dereferences every component that is an alias of another one
// so alias cycles are reported once, as errors. Ids named in a reported
// cycle are not checked again.
func (p *documentParser) checkAliases(category string) parser.Step {
	s := p.state
	return func(values ...*element.Element) *parser.ParseResult {
		r := parser.NewParseResult(values...)
		inCycle := mapset.NewThreadUnsafeSet[string]()
		for _, id := range s.IDs(category) {
			entry, _ := s.Lookup(category, id)
			if !entry.Kind.IsNamed() || inCycle.Contains(id) {
				continue
			}
			ref := element.NewString(componentRef(category, id))
			ref.SourceMap = entry.SourceMap
			errs := s.Dereference(ref, category, false).ErrorsOnly()
			for _, a := range errs.Errors() {
				var refErr *oaserrors.ReferenceError
				if errors.As(a, &refErr) && refErr.IsCircular {
					inCycle.Append(refErr.Chain...)
				}
			}
			r = r.Concat(errs)
		}
		return r
	}
}

func (p *documentParser) parseSecuritySchemes(member *element.Element) *parser.ParseResult {
	s := p.state
	parseMap := parser.ParseMap(s, componentsObject, categorySecuritySchemes, p.parseSecurityScheme)

	register := func(values ...*element.Element) *parser.ParseResult {
		m := values[0]
		r := parser.NewParseResult(m)
		for _, entry := range m.Value().Items() {
			scheme := entry.Value()
			if scheme == nil {
				continue
			}
			name := entry.KeyString()
			if s.HasFlow(name) || !s.RegisterScheme(name) {
				r = r.Concat(s.Warning(fmt.Sprintf("'%s' security scheme name '%s' is already in use", componentsObject, name), entry))
				continue
			}
			if !scheme.Is(kindOAuth2) {
				scheme.ID = name
				s.Define(categorySecuritySchemes, name, scheme)
				continue
			}
			for _, flow := range scheme.Keys() {
				flowName := name + " " + flow
				if s.HasScheme(flowName) || !s.RegisterFlow(flowName) {
					r = r.Concat(s.Warning(fmt.Sprintf("'%s' OAuth flow name '%s' is already in use", componentsObject, flowName), entry))
				}
			}
			scheme.ID = name
			s.Define(categorySecuritySchemes, name, scheme)
		}
		return r
	}

	return parser.Pipe(parseMap(member), register)
}
