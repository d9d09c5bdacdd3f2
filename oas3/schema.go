package oas3

import (
	"fmt"
	"slices"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/parser"
)

// schemaTypes maps the OpenAPI 3.0 type names to element kinds.
var schemaTypes = map[string]element.Kind{
	"string":  element.KindString,
	"number":  element.KindNumber,
	"integer": element.KindNumber,
	"boolean": element.KindBoolean,
	"object":  element.KindObject,
	"array":   element.KindArray,
}

// ignoredSchemaKeys are valid Schema Object keys that have no element
// representation.
var ignoredSchemaKeys = []string{
	"format", "pattern", "multipleOf",
	"minimum", "maximum", "exclusiveMinimum", "exclusiveMaximum",
	"minLength", "maxLength", "minItems", "maxItems", "uniqueItems",
	"minProperties", "maxProperties", "additionalProperties",
	"oneOf", "anyOf", "not", "discriminator",
	"readOnly", "writeOnly", "deprecated", "xml", "externalDocs",
}

// parseSchema parses a Schema Object into a data structure element.
// A $ref becomes a named type; its sibling keys are ignored.
func (p *documentParser) parseSchema(el *element.Element) *parser.ParseResult {
	s := p.state
	if el.Is(element.KindObject) {
		if ref := el.GetMember("$ref"); ref != nil {
			return s.Dereference(ref.Value(), categorySchemas, true)
		}
	}

	handlers := map[string]parser.MemberTransform{
		"type":        p.parseSchemaType,
		"title":       parser.ParseString(s, schemaObject, false),
		"description": parser.ParseString(s, schemaObject, false),
		"nullable":    parser.ParseBoolean(s, schemaObject, false),
		"properties":  parser.ParseMap(s, schemaObject, "properties", p.parseSchema),
		"items":       p.parseSchemaMember,
		"required":    p.parseRequired,
		"enum":        p.parseEnum,
		"allOf":       p.parseAllOf,
		"default":     parser.Keep,
		"example":     parser.Keep,
	}
	for _, key := range ignoredSchemaKeys {
		handlers[key] = parser.Ignore
	}

	parseObject := parser.ParseObject(s, schemaObject, parser.ByKey(handlers, parser.UnsupportedKey(s, schemaObject)))
	return parser.PipeElement(el, parser.FromParser(parseObject), parser.Lift(buildSchema))
}

// parseSchemaMember parses the value of a member holding a nested schema.
func (p *documentParser) parseSchemaMember(member *element.Element) *parser.ParseResult {
	return p.parseSchema(member.Value())
}

func (p *documentParser) parseSchemaType(member *element.Element) *parser.ParseResult {
	s := p.state
	checkType := func(values ...*element.Element) *parser.ParseResult {
		typ, _ := values[0].Value().StringValue()
		if _, ok := schemaTypes[typ]; !ok {
			return s.Warning(fmt.Sprintf("'%s' 'type' '%s' is not a valid type", schemaObject, typ), values[0].Value())
		}
		return parser.NewParseResult(values...)
	}
	return parser.PipeElement(member,
		parser.FromParser(parser.Parser(parser.ParseString(s, schemaObject, false))),
		checkType,
	)
}

func (p *documentParser) parseRequired(member *element.Element) *parser.ParseResult {
	s := p.state
	item := func(el *element.Element) *parser.ParseResult {
		if el.Is(element.KindString) && el.HasContent() {
			return parser.NewParseResult(el)
		}
		return s.Warning(fmt.Sprintf("'%s' 'required' array value is not a string", schemaObject), el)
	}
	return parser.ParseArray(s, schemaObject, item)(member.Value())
}

func (p *documentParser) parseEnum(member *element.Element) *parser.ParseResult {
	return parser.ParseArray(p.state, schemaObject, parser.Parser(parser.Keep))(member.Value())
}

func (p *documentParser) parseAllOf(member *element.Element) *parser.ParseResult {
	s := p.state
	value := member.Value()
	if !value.Is(element.KindArray) {
		return s.Warning(fmt.Sprintf("'%s' 'allOf' is not an array", schemaObject), member)
	}
	if value.Len() != 1 {
		return s.Warning(fmt.Sprintf("'%s' 'allOf' is only supported with exactly one schema", schemaObject), member)
	}
	return p.parseSchema(value.Items()[0])
}

// buildSchema turns a parsed Schema Object into a data structure element.
func buildSchema(values ...*element.Element) *element.Element {
	obj := values[0]

	typ, _ := obj.Get("type").StringValue()
	kind, typed := schemaTypes[typ]
	properties := obj.Get("properties")
	items := obj.Get("items")
	base := obj.Get("allOf")

	var out *element.Element
	switch {
	case obj.HasKey("enum"):
		out = element.NewEnum(nil, obj.Get("enum").Items()...)

	case kind == element.KindObject || (!typed && properties != nil):
		out = element.NewObject()
		if base != nil && base.Kind.IsNamed() {
			out.Append(element.NewRef(string(base.Kind)))
		}
		required := requiredKeys(obj.Get("required"))
		for _, property := range properties.Items() {
			if slices.Contains(required, property.KeyString()) {
				property.TypeAttributes = property.TypeAttributes.With(element.Required)
			}
			out.Append(property)
		}

	case kind == element.KindArray || (!typed && items != nil):
		out = element.NewArray()
		if items != nil {
			out.Append(items)
		}

	case typed:
		out = element.New(kind)

	case base != nil:
		out = base.Clone()

	default:
		out = element.New(element.KindObject)
	}

	out.SourceMap = obj.SourceMap
	out.Title, _ = obj.Get("title").StringValue()
	out.Description, _ = obj.Get("description").StringValue()
	if nullable, _ := obj.Get("nullable").BoolValue(); nullable {
		out.TypeAttributes = out.TypeAttributes.With(element.Nullable)
	}
	if def := obj.Get("default"); def != nil {
		out.Default = def
	}
	if example := obj.Get("example"); example != nil {
		out.Samples = []*element.Element{example}
	}
	return out
}

func requiredKeys(el *element.Element) []string {
	var keys []string
	for _, item := range el.Items() {
		if s, ok := item.StringValue(); ok {
			keys = append(keys, s)
		}
	}
	return keys
}
