package oas3

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/materializer"
	"github.com/erraggy/apielements/parser"
)

// httpMethods are the operation keys of a Path Item Object in document order.
var httpMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// statusCodePattern matches a response status code or range, e.g. 200 or 4XX.
var statusCodePattern = regexp.MustCompile(`^[1-5](\d\d|XX)$`)

func (p *documentParser) parsePaths(member *element.Element) *parser.ParseResult {
	s := p.state
	transform := func(path *element.Element) *parser.ParseResult {
		switch {
		case strings.HasPrefix(path.KeyString(), "/"):
			return p.parsePathItem(path)
		case parser.IsExtension(path):
			return parser.NewParseResult()
		}
		return s.Warning(fmt.Sprintf("'%s' contains invalid key '%s'", pathsObject, path.KeyString()), path)
	}
	return parser.ParseObject(s, pathsObject, transform)(member.Value())
}

// parsePathItem parses a Path Item Object into a resource element titled
// with the path template.
func (p *documentParser) parsePathItem(member *element.Element) *parser.ParseResult {
	s := p.state
	handlers := map[string]parser.MemberTransform{
		"summary":     parser.ParseString(s, pathItemObject, false),
		"description": parser.ParseString(s, pathItemObject, false),
		"parameters":  parser.Ignore,
		"servers":     parser.Ignore,
	}
	for _, method := range httpMethods {
		handlers[method] = p.parseOperation(method)
	}
	parseObject := parser.ParseObject(s, pathItemObject, parser.ByKey(handlers, parser.UnsupportedKey(s, pathItemObject)))

	path := member.KeyString()
	build := func(values ...*element.Element) *element.Element {
		obj := values[0]
		resource := element.New(kindResource)
		resource.Title = path
		resource.Description, _ = obj.Get("description").StringValue()
		resource.SourceMap = member.SourceMap
		for _, item := range obj.Items() {
			if item.Value().Is(kindTransition) {
				resource.Append(item.Value())
			}
		}
		return resource
	}

	return parser.PipeElement(member.Value(), parser.FromParser(parseObject), parser.Lift(build))
}

// parseOperation returns a transform that parses an Operation Object into a
// transition element. Each response becomes one HTTP transaction.
func (p *documentParser) parseOperation(method string) parser.MemberTransform {
	s := p.state
	build := func(values ...*element.Element) *element.Element {
		obj := values[0]
		transition := element.New(kindTransition)
		transition.ID, _ = obj.Get("operationId").StringValue()
		transition.Title, _ = obj.Get("summary").StringValue()
		transition.Description, _ = obj.Get("description").StringValue()
		transition.SourceMap = obj.SourceMap

		for _, status := range obj.Get("responses").Items() {
			request := element.New(kindRequest)
			request.Title = strings.ToUpper(method)

			response := status.Value().Clone()
			response.Title = status.KeyString()

			transition.Append(element.New(kindTransaction).Append(request, response))
		}
		return transition
	}

	return func(member *element.Element) *parser.ParseResult {
		parseObject := parser.ParseObject(s, operationObject, parser.ByKey(
			map[string]parser.MemberTransform{
				"operationId":  p.parseOperationID,
				"summary":      parser.ParseString(s, operationObject, false),
				"description":  parser.ParseString(s, operationObject, false),
				"responses":    p.parseResponses,
				"tags":         parser.Ignore,
				"parameters":   parser.Ignore,
				"requestBody":  parser.Ignore,
				"callbacks":    parser.Ignore,
				"deprecated":   parser.Ignore,
				"security":     parser.Ignore,
				"servers":      parser.Ignore,
				"externalDocs": parser.Ignore,
			},
			parser.UnsupportedKey(s, operationObject),
		), parser.WithRequiredKeys("responses"))

		return parser.PipeElement(member.Value(), parser.FromParser(parseObject), parser.Lift(build))
	}
}

func (p *documentParser) parseOperationID(member *element.Element) *parser.ParseResult {
	s := p.state
	unique := func(values ...*element.Element) *parser.ParseResult {
		id, _ := values[0].Value().StringValue()
		if !s.RegisterID(id) {
			return s.Warning(fmt.Sprintf("duplicate operationId '%s'", id), values[0].Value())
		}
		return parser.NewParseResult(values...)
	}
	return parser.Pipe(parser.ParseString(s, operationObject, false)(member), unique)
}

func (p *documentParser) parseResponses(member *element.Element) *parser.ParseResult {
	s := p.state
	transform := func(status *element.Element) *parser.ParseResult {
		code := status.KeyString()
		switch {
		case code == "default" || statusCodePattern.MatchString(code):
			return p.parseResponseOrRef(status.Value())
		case parser.IsExtension(status):
			return parser.NewParseResult()
		}
		return s.Warning(fmt.Sprintf("'%s' contains invalid key '%s'", responsesObject, code), status)
	}
	return parser.ParseObject(s, responsesObject, transform)(member.Value())
}

// parseResponseOrRef parses a Response Object or dereferences a response
// component.
func (p *documentParser) parseResponseOrRef(el *element.Element) *parser.ParseResult {
	s := p.state
	ref := el.GetMember("$ref")
	if !el.Is(element.KindObject) || ref == nil {
		return p.parseResponse(el)
	}

	resolved := func(values ...*element.Element) *parser.ParseResult {
		if !values[0].Is(kindResponse) {
			raw, _ := ref.Value().StringValue()
			return s.Warning(fmt.Sprintf("'%s' '%s' could not be resolved", responseObject, raw), ref.Value())
		}
		return parser.NewParseResult(values...)
	}
	return parser.Pipe(s.Dereference(ref.Value(), categoryResponses, false), resolved)
}

// parseResponse parses a Response Object into an httpResponse element.
func (p *documentParser) parseResponse(el *element.Element) *parser.ParseResult {
	s := p.state
	parseObject := parser.ParseObject(s, responseObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"description": parser.ParseString(s, responseObject, true),
			"content":     p.parseContent,
			"headers":     parser.Ignore,
			"links":       parser.Ignore,
		},
		parser.UnsupportedKey(s, responseObject),
	), parser.WithRequiredKeys("description"))

	build := func(values ...*element.Element) *element.Element {
		obj := values[0]
		response := element.New(kindResponse)
		response.Description, _ = obj.Get("description").StringValue()
		response.SourceMap = obj.SourceMap
		for _, mediaType := range obj.Get("content").Items() {
			response.Append(mediaType.Value().Items()...)
		}
		return response
	}

	return parser.PipeElement(el, parser.FromParser(parseObject), parser.Lift(build))
}

func (p *documentParser) parseContent(member *element.Element) *parser.ParseResult {
	s := p.state
	if !member.Value().Is(element.KindObject) {
		return s.Warning(fmt.Sprintf("'%s' 'content' is not an object", responseObject), member)
	}
	transform := func(media *element.Element) *parser.ParseResult {
		return p.parseMediaType(media.KeyString(), media.Value())
	}
	return parser.ParseObject(s, responseObject, transform)(member.Value())
}

// parseMediaType parses a Media Type Object into an array holding the data
// structure of its schema and its message body asset.
func (p *documentParser) parseMediaType(mediaType string, el *element.Element) *parser.ParseResult {
	s := p.state
	parseObject := parser.ParseObject(s, mediaTypeObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"schema":   p.parseSchemaMember,
			"example":  parser.Keep,
			"examples": parser.Ignore,
			"encoding": parser.Ignore,
		},
		parser.UnsupportedKey(s, mediaTypeObject),
	))

	build := func(values ...*element.Element) *element.Element {
		obj := values[0]
		out := element.NewArray()
		schema := obj.Get("schema")
		if schema != nil {
			out.Append(dataStructure(schema))
		}
		if asset := p.messageBody(mediaType, obj.Get("example"), schema); asset != nil {
			out.Append(asset)
		}
		return out
	}

	return parser.PipeElement(el, parser.FromParser(parseObject), parser.Lift(build))
}

// messageBody returns the message body asset of a media type: the example
// when there is one, otherwise a body generated from the schema for JSON
// media types.
func (p *documentParser) messageBody(mediaType string, example, schema *element.Element) *element.Element {
	var (
		value     any
		ok        bool
		generated bool
	)
	switch {
	case example != nil:
		value, ok = materializer.Materialize(example, nil)
	case p.generateMessageBody && schema != nil && isJSONMediaType(mediaType):
		value, ok = materializer.Materialize(schema, p.state.Table(categorySchemas))
		generated = true
	}
	if !ok {
		return nil
	}

	body, isString := value.(string)
	if !isString || isJSONMediaType(mediaType) {
		data, err := materializer.ToJSON(value)
		if err != nil {
			p.state.Logger().Warn("failed to encode message body", "mediaType", mediaType, "error", err)
			return nil
		}
		body = string(data)
	}

	asset := element.New(kindAsset).AddClass(classMessageBody)
	if generated {
		asset.AddClass(classGenerated)
	}
	asset.Title = mediaType
	asset.Content = element.String(body)
	return asset
}

// isJSONMediaType reports whether mediaType is application/json or uses the
// +json structured syntax suffix.
func isJSONMediaType(mediaType string) bool {
	base, _, _ := strings.Cut(mediaType, ";")
	base = strings.ToLower(strings.TrimSpace(base))
	return base == "application/json" || strings.HasSuffix(base, "+json")
}
