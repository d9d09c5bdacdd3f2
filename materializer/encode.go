package materializer

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// ToJSON encodes a materialized value as indented JSON.
func ToJSON(value any) ([]byte, error) {
	return json.MarshalIndent(value, "", "  ")
}

// ToYAML encodes a materialized value as YAML.
func ToYAML(value any) ([]byte, error) {
	node, err := valueToNode(value)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(node)
}

// scalarNode creates a yaml.Node for a scalar value.
func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

// valueToNode converts a materialized value to a yaml.Node.
func valueToNode(v any) (*yaml.Node, error) {
	if v == nil {
		return scalarNode("!!null", "null"), nil
	}

	switch val := v.(type) {
	case bool:
		return scalarNode("!!bool", strconv.FormatBool(val)), nil
	case float64:
		if val == math.Trunc(val) && math.Abs(val) < 1e15 {
			return scalarNode("!!int", strconv.FormatFloat(val, 'f', -1, 64)), nil
		}
		return scalarNode("!!float", strconv.FormatFloat(val, 'g', -1, 64)), nil
	case string:
		return scalarNode("!!str", val), nil
	case []any:
		node := &yaml.Node{
			Kind:    yaml.SequenceNode,
			Tag:     "!!seq",
			Content: make([]*yaml.Node, 0, len(val)),
		}
		for _, item := range val {
			child, err := valueToNode(item)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, child)
		}
		return node, nil
	case Object:
		node := &yaml.Node{
			Kind:    yaml.MappingNode,
			Tag:     "!!map",
			Content: make([]*yaml.Node, 0, 2*len(val)),
		}
		for _, f := range val {
			child, err := valueToNode(f.Value)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, scalarNode("!!str", f.Key), child)
		}
		return node, nil
	default:
		return nil, fmt.Errorf("materializer: cannot convert %T to yaml.Node", v)
	}
}
