package oas3

import (
	"fmt"
	"strings"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/parser"
)

// documentParser holds what the object parsers of one document share.
type documentParser struct {
	state               *parser.State
	generateMessageBody bool

	title   string
	version string
}

// parse converts the loaded document into an API element.
func (p *documentParser) parse(root *element.Element) *parser.ParseResult {
	p.registerComponents(root)

	s := p.state
	parseDocument := parser.ParseObject(s, openAPIObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"openapi":      p.parseOpenAPI,
			"info":         p.parseInfo,
			"components":   p.parseComponents,
			"paths":        p.parsePaths,
			"servers":      parser.Ignore,
			"security":     parser.Ignore,
			"tags":         parser.Ignore,
			"externalDocs": parser.Ignore,
		},
		parser.UnsupportedKey(s, openAPIObject),
	),
		parser.WithRequiredKeys("openapi", "info"),
		parser.WithOrderedKeys("openapi", "components"),
	)

	return parser.PipeElement(root, parser.FromParser(parseDocument), parser.Lift(p.buildAPI))
}

// registerComponents installs a skeleton for every component declared in
// the document so references resolve before any component is parsed.
func (p *documentParser) registerComponents(root *element.Element) {
	components := root.Get("components")
	if !components.Is(element.KindObject) {
		return
	}
	for _, category := range componentCategories {
		entries := components.Get(category)
		if !entries.Is(element.KindObject) {
			continue
		}
		p.state.RegisterComponents(category, entries.Keys()...)
	}
}

func (p *documentParser) parseOpenAPI(member *element.Element) *parser.ParseResult {
	s := p.state
	checkVersion := func(values ...*element.Element) *parser.ParseResult {
		value := values[0].Value()
		raw, _ := value.StringValue()

		v, err := parseVersion(raw)
		if err != nil {
			return parser.Errorf(value, "'%s' 'openapi' '%s' is not a valid version", openAPIObject, raw)
		}
		if !v.isSupported() {
			return parser.Errorf(value, "Unsupported OpenAPI version '%s'", raw)
		}

		r := parser.NewParseResult(values...)
		if !v.isFullySupported() {
			r = r.Concat(s.Warning(fmt.Sprintf("Version '%s' is not fully supported", raw), value))
		}
		s.Logger().Debug("detected OpenAPI version", "version", v.String())
		return r
	}

	return parser.PipeElement(member,
		parser.FromParser(parser.Parser(parser.ParseString(s, openAPIObject, true))),
		checkVersion,
	)
}

func (p *documentParser) parseInfo(member *element.Element) *parser.ParseResult {
	s := p.state
	parseInfo := parser.ParseObject(s, infoObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"title":          parser.ParseString(s, infoObject, true),
			"version":        parser.ParseString(s, infoObject, true),
			"description":    parser.ParseString(s, infoObject, false),
			"termsOfService": parser.Ignore,
			"contact":        parser.Ignore,
			"license":        parser.Ignore,
		},
		parser.UnsupportedKey(s, infoObject),
	), parser.WithRequiredKeys("title", "version"))

	return parseInfo(member.Value())
}

// buildAPI turns the parsed OpenAPI Object into the api category.
func (p *documentParser) buildAPI(values ...*element.Element) *element.Element {
	doc := values[0]
	info := doc.Get("info")

	api := element.New(kindCategory).AddClass(classAPI)
	api.SourceMap = doc.SourceMap
	p.title, _ = info.Get("title").StringValue()
	p.version, _ = info.Get("version").StringValue()
	api.Title = p.title

	if description, ok := info.Get("description").StringValue(); ok {
		api.Append(copyElement(description, info.Get("description")))
	}

	if structures := p.definedComponents(categorySchemas); len(structures) > 0 {
		category := element.New(kindCategory).AddClass(classDataStructures)
		for _, schema := range structures {
			category.Append(dataStructure(schema))
		}
		api.Append(category)
	}

	if schemes := p.definedComponents(categorySecuritySchemes); len(schemes) > 0 {
		category := element.New(kindCategory).AddClass(classAuthSchemes)
		category.Append(schemes...)
		api.Append(category)
	}

	for _, path := range doc.Get("paths").Items() {
		if resource := path.Value(); resource != nil {
			api.Append(resource)
		}
	}

	return api
}

// definedComponents returns the parsed entries of category in document order.
func (p *documentParser) definedComponents(category string) []*element.Element {
	var out []*element.Element
	for _, el := range p.state.Components(category) {
		if el.Kind != "" {
			out = append(out, el)
		}
	}
	return out
}

func copyElement(text string, source *element.Element) *element.Element {
	c := element.New(kindCopy)
	c.Content = element.String(text)
	c.SourceMap = source.SourceMap
	return c
}

func dataStructure(schema *element.Element) *element.Element {
	ds := element.New(kindDataStructure)
	ds.Content = schema
	return ds
}

// componentRef builds the reference string of a component id.
func componentRef(category, id string) string {
	escaper := strings.NewReplacer("~", "~0", "/", "~1")
	return "#/components/" + category + "/" + escaper.Replace(id)
}
