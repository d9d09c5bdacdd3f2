package oas3

import (
	"fmt"

	"github.com/erraggy/apielements/element"
	"github.com/erraggy/apielements/parser"
)

// parseSecurityScheme parses a Security Scheme Object into an
// authentication scheme element. Unsupported scheme types produce a warning
// and no value.
func (p *documentParser) parseSecurityScheme(el *element.Element) *parser.ParseResult {
	s := p.state
	parseObject := parser.ParseObject(s, securitySchemeObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"type":             parser.ParseString(s, securitySchemeObject, true),
			"description":      parser.ParseString(s, securitySchemeObject, false),
			"name":             parser.ParseString(s, securitySchemeObject, false),
			"in":               parser.ParseString(s, securitySchemeObject, false),
			"scheme":           parser.ParseString(s, securitySchemeObject, false),
			"bearerFormat":     parser.ParseString(s, securitySchemeObject, false),
			"openIdConnectUrl": parser.ParseString(s, securitySchemeObject, false),
			"flows":            p.parseOAuthFlows,
		},
		parser.UnsupportedKey(s, securitySchemeObject),
	), parser.WithRequiredKeys("type"))

	return parser.PipeElement(el, parser.FromParser(parseObject), p.buildSecurityScheme)
}

func (p *documentParser) buildSecurityScheme(values ...*element.Element) *parser.ParseResult {
	s := p.state
	obj := values[0]
	typ, _ := obj.Get("type").StringValue()

	var scheme *element.Element
	switch typ {
	case "apiKey":
		r := parser.ParseObject(s, securitySchemeObject, parser.Keep, parser.WithRequiredKeys("name", "in"))(obj)
		if !r.HasValue() {
			return r
		}
		name, _ := obj.Get("name").StringValue()
		in, _ := obj.Get("in").StringValue()
		switch in {
		case "header":
			scheme = element.New(kindTokenScheme).Append(element.NewMember("httpHeaderName", element.NewString(name)))
		case "query":
			scheme = element.New(kindTokenScheme).Append(element.NewMember("queryParameterName", element.NewString(name)))
		default:
			return s.Warning(fmt.Sprintf("'%s' 'in' '%s' is not supported", securitySchemeObject, in), obj.Get("in"))
		}

	case "http":
		httpScheme, _ := obj.Get("scheme").StringValue()
		switch httpScheme {
		case "basic":
			scheme = element.New(kindBasicScheme)
		case "bearer":
			scheme = element.New(kindTokenScheme).Append(element.NewMember("httpHeaderName", element.NewString("Authorization")))
		default:
			return s.Warning(fmt.Sprintf("'%s' 'scheme' '%s' is not supported", securitySchemeObject, httpScheme), obj)
		}

	case "oauth2":
		r := parser.ParseObject(s, securitySchemeObject, parser.Keep, parser.WithRequiredKeys("flows"))(obj)
		if !r.HasValue() {
			return r
		}
		scheme = element.New(kindOAuth2)
		for _, flow := range obj.Get("flows").Items() {
			scheme.Append(flow)
		}

	case "openIdConnect":
		return s.Warning(fmt.Sprintf("'%s' 'type' '%s' is not supported", securitySchemeObject, typ), obj.Get("type"))

	default:
		return s.Warning(fmt.Sprintf("'%s' 'type' '%s' is not a valid security scheme type", securitySchemeObject, typ), obj.Get("type"))
	}

	scheme.Description, _ = obj.Get("description").StringValue()
	scheme.SourceMap = obj.SourceMap
	return parser.NewParseResult(scheme)
}

func (p *documentParser) parseOAuthFlows(member *element.Element) *parser.ParseResult {
	s := p.state
	parseFlows := parser.ParseObject(s, oauthFlowsObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"implicit":          p.parseOAuthFlow("authorizationUrl"),
			"password":          p.parseOAuthFlow("tokenUrl"),
			"clientCredentials": p.parseOAuthFlow("tokenUrl"),
			"authorizationCode": p.parseOAuthFlow("authorizationUrl", "tokenUrl"),
		},
		parser.UnsupportedKey(s, oauthFlowsObject),
	))
	return parseFlows(member.Value())
}

// parseOAuthFlow returns a transform for one flow of an OAuth Flows Object.
// requiredURLs depend on the flow type; scopes are always required.
func (p *documentParser) parseOAuthFlow(requiredURLs ...string) parser.MemberTransform {
	s := p.state
	scopes := func(member *element.Element) *parser.ParseResult {
		if !member.Value().Is(element.KindObject) {
			return s.Warning(fmt.Sprintf("'%s' 'scopes' is not an object", oauthFlowObject), member)
		}
		return parser.Keep(member)
	}

	parseFlow := parser.ParseObject(s, oauthFlowObject, parser.ByKey(
		map[string]parser.MemberTransform{
			"authorizationUrl": parser.ParseString(s, oauthFlowObject, false),
			"tokenUrl":         parser.ParseString(s, oauthFlowObject, false),
			"refreshUrl":       parser.ParseString(s, oauthFlowObject, false),
			"scopes":           scopes,
		},
		parser.UnsupportedKey(s, oauthFlowObject),
	), parser.WithRequiredKeys(append([]string{"scopes"}, requiredURLs...)...))

	return func(member *element.Element) *parser.ParseResult {
		return parseFlow(member.Value())
	}
}
