package materializer

import (
	"bytes"

	"github.com/goccy/go-json"
	"go.yaml.in/yaml/v4"
)

// Field is one member of a materialized object.
type Field struct {
	Key   string
	Value any
}

// Object is a materialized object. Unlike a map it keeps member order.
type Object []Field

// Get returns the value of the first field named key.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the field names in order.
func (o Object) Keys() []string {
	keys := make([]string, 0, len(o))
	for _, f := range o {
		keys = append(keys, f.Key)
	}
	return keys
}

// MarshalJSON encodes o as a JSON object with fields in order.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes o as a YAML mapping with fields in order.
func (o Object) MarshalYAML() (any, error) {
	return valueToNode(o)
}

var (
	_ json.Marshaler = Object(nil)
	_ yaml.Marshaler = Object(nil)
)
