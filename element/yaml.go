package element

import (
	"fmt"
	"math"
	"time"

	"github.com/erraggy/apielements/oaserrors"
	"go.yaml.in/yaml/v4"
)

// MaxDepth is the deepest nesting FromNode accepts before giving up.
// It bounds recursion on hostile inputs such as deeply nested flow sequences.
const MaxDepth = 1000

// Load decodes a YAML or JSON document into an element tree.
// file is recorded in every source location.
func Load(data []byte, file string) (*Element, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    file,
			Message: "failed to decode document",
			Cause:   err,
		}
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		return nil, &oaserrors.ParseError{Path: file, Message: "document is empty"}
	}
	return FromNode(&root, file)
}

// LoadString is Load for string input.
func LoadString(data, file string) (*Element, error) {
	return Load([]byte(data), file)
}

// FromNode converts a YAML node tree into an element tree.
//
// Mappings become objects of members, sequences become arrays, scalars become
// primitives according to their resolved tag. Aliases are expanded; a
// document whose aliases expand out of proportion fails with a
// *oaserrors.ResourceLimitError. Every element records the node's line and
// column.
func FromNode(node *yaml.Node, file string) (*Element, error) {
	c := &nodeConverter{file: file}
	return c.convert(node, 0)
}

// Alias expansion is bounded the way the yaml decoder bounds it: once a
// document has produced more than aliasMinElements elements, the share of
// elements produced while expanding aliases may not exceed
// allowedAliasRatio.
const (
	aliasMinAliased   = 100
	aliasMinElements  = 1000
	aliasRatioLow     = 400_000
	aliasRatioHigh    = 4_000_000
	aliasRatioSpread  = float64(aliasRatioHigh - aliasRatioLow)
	aliasRatioMax     = 0.99
	aliasRatioMin     = 0.10
	aliasRatioFalloff = aliasRatioMax - aliasRatioMin
)

func allowedAliasRatio(elements int) float64 {
	switch {
	case elements <= aliasRatioLow:
		return aliasRatioMax
	case elements >= aliasRatioHigh:
		return aliasRatioMin
	default:
		return aliasRatioMax - aliasRatioFalloff*(float64(elements-aliasRatioLow)/aliasRatioSpread)
	}
}

type nodeConverter struct {
	file string

	elements   int
	aliased    int
	aliasDepth int
}

// count records one converted node and fails when aliases have expanded
// out of proportion to the document.
func (c *nodeConverter) count() error {
	c.elements++
	if c.aliasDepth > 0 {
		c.aliased++
	}
	if c.aliased > aliasMinAliased && c.elements > aliasMinElements &&
		float64(c.aliased)/float64(c.elements) > allowedAliasRatio(c.elements) {
		return &oaserrors.ResourceLimitError{
			ResourceType: "alias_expansion",
			Limit:        int64(allowedAliasRatio(c.elements) * float64(c.elements)),
			Actual:       int64(c.aliased),
			Message:      "document contains excessive aliasing",
		}
	}
	return nil
}

func (c *nodeConverter) location(node *yaml.Node) []SourceLocation {
	return []SourceLocation{{Line: node.Line, Column: node.Column, File: c.file}}
}

func (c *nodeConverter) convert(node *yaml.Node, depth int) (*Element, error) {
	if depth > MaxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "nesting_depth",
			Limit:        MaxDepth,
			Actual:       int64(depth),
			Message:      fmt.Sprintf("document nesting exceeds %d levels", MaxDepth),
		}
	}

	if err := c.count(); err != nil {
		return nil, err
	}

	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return NewNull(), nil
		}
		return c.convert(node.Content[0], depth)

	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, &oaserrors.ParseError{Path: c.file, Line: node.Line, Column: node.Column, Message: "unresolved alias"}
		}
		c.aliasDepth++
		el, err := c.convert(node.Alias, depth+1)
		c.aliasDepth--
		return el, err

	case yaml.MappingNode:
		obj := NewObject()
		obj.SourceMap = c.location(node)
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]
			key, err := c.convert(keyNode, depth+1)
			if err != nil {
				return nil, err
			}
			if key.Kind != KindString {
				// Mapping keys are always addressed by their text.
				key = &Element{Kind: KindString, Content: String(keyNode.Value), SourceMap: key.SourceMap}
			}
			value, err := c.convert(valueNode, depth+1)
			if err != nil {
				return nil, err
			}
			member := NewMemberElement(key, value)
			member.SourceMap = key.SourceMap
			obj.Append(member)
		}
		return obj, nil

	case yaml.SequenceNode:
		arr := NewArray()
		arr.SourceMap = c.location(node)
		for _, child := range node.Content {
			item, err := c.convert(child, depth+1)
			if err != nil {
				return nil, err
			}
			arr.Append(item)
		}
		return arr, nil

	case yaml.ScalarNode:
		el, err := c.scalar(node)
		if err != nil {
			return nil, err
		}
		el.SourceMap = c.location(node)
		return el, nil
	}

	return nil, &oaserrors.ParseError{
		Path:    c.file,
		Line:    node.Line,
		Column:  node.Column,
		Message: fmt.Sprintf("unsupported YAML node kind %d", node.Kind),
	}
}

func (c *nodeConverter) scalar(node *yaml.Node) (*Element, error) {
	var v any
	if err := node.Decode(&v); err != nil {
		return nil, &oaserrors.ParseError{
			Path:    c.file,
			Line:    node.Line,
			Column:  node.Column,
			Message: "invalid scalar",
			Cause:   err,
		}
	}

	switch val := v.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBoolean(val), nil
	case int:
		return NewNumber(float64(val)), nil
	case int64:
		return NewNumber(float64(val)), nil
	case uint64:
		return NewNumber(float64(val)), nil
	case float64:
		if math.IsInf(val, 0) || math.IsNaN(val) {
			return NewString(node.Value), nil
		}
		return NewNumber(val), nil
	case string:
		return NewString(val), nil
	case time.Time:
		// Unquoted dates keep their source text.
		return NewString(node.Value), nil
	default:
		return NewString(node.Value), nil
	}
}
