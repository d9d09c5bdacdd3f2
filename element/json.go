package element

import (
	"github.com/goccy/go-json"
)

// refract is the wire shape of an element in the API Elements JSON
// serialization.
type refract struct {
	Element    string             `json:"element"`
	Meta       *refractMeta       `json:"meta,omitempty"`
	Attributes *refractAttributes `json:"attributes,omitempty"`
	Content    json.RawMessage    `json:"content,omitempty"`
}

type refractMeta struct {
	ID          *Element `json:"id,omitempty"`
	Classes     *Element `json:"classes,omitempty"`
	Title       *Element `json:"title,omitempty"`
	Description *Element `json:"description,omitempty"`
}

type refractAttributes struct {
	TypeAttributes *Element `json:"typeAttributes,omitempty"`
	Default        *Element `json:"default,omitempty"`
	Samples        *Element `json:"samples,omitempty"`
	Enumerations   *Element `json:"enumerations,omitempty"`
	SourceMap      *Element `json:"sourceMap,omitempty"`
}

type refractMember struct {
	Key   *Element `json:"key"`
	Value *Element `json:"value,omitempty"`
}

// MarshalJSON renders e in the refract JSON form:
//
//	{"element": "<kind>", "meta": {...}, "attributes": {...}, "content": ...}
func (e *Element) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}

	out := refract{Element: string(e.Kind)}

	if meta := e.refractMeta(); meta != nil {
		out.Meta = meta
	}
	if attrs := e.refractAttributes(); attrs != nil {
		out.Attributes = attrs
	}

	if e.Content != nil {
		content, err := marshalContent(e.Content)
		if err != nil {
			return nil, err
		}
		out.Content = content
	}

	return json.Marshal(out)
}

// String renders e as compact refract JSON. It is meant for diagnostics.
func (e *Element) String() string {
	data, err := e.MarshalJSON()
	if err != nil {
		return "<invalid element: " + err.Error() + ">"
	}
	return string(data)
}

func marshalContent(c Content) (json.RawMessage, error) {
	switch content := c.(type) {
	case Bool:
		return json.Marshal(bool(content))
	case Number:
		return json.Marshal(float64(content))
	case String:
		return json.Marshal(string(content))
	case Items:
		if content == nil {
			return json.RawMessage("[]"), nil
		}
		return json.Marshal([]*Element(content))
	case *Member:
		return json.Marshal(refractMember{Key: content.Key, Value: content.Value})
	case *Element:
		return json.Marshal(content)
	}
	return nil, nil
}

func (e *Element) refractMeta() *refractMeta {
	meta := &refractMeta{}
	empty := true
	if e.ID != "" {
		meta.ID, empty = NewString(e.ID), false
	}
	if len(e.Classes) > 0 {
		classes := NewArray()
		for _, c := range e.Classes {
			classes.Append(NewString(c))
		}
		meta.Classes, empty = classes, false
	}
	if e.Title != "" {
		meta.Title, empty = NewString(e.Title), false
	}
	if e.Description != "" {
		meta.Description, empty = NewString(e.Description), false
	}
	if empty {
		return nil
	}
	return meta
}

func (e *Element) refractAttributes() *refractAttributes {
	attrs := &refractAttributes{}
	empty := true

	if names := e.TypeAttributes.Names(); len(names) > 0 {
		ta := NewArray()
		for _, n := range names {
			ta.Append(NewString(n))
		}
		attrs.TypeAttributes, empty = ta, false
	}
	if e.Default != nil {
		attrs.Default, empty = e.Default, false
	}
	if len(e.Samples) > 0 {
		attrs.Samples, empty = NewArray(e.Samples...), false
	}
	if len(e.Enumerations) > 0 {
		attrs.Enumerations, empty = NewArray(e.Enumerations...), false
	}
	if len(e.SourceMap) > 0 {
		sm := New("sourceMap")
		for _, loc := range e.SourceMap {
			sm.Append(NewArray(NewNumber(float64(loc.Line)), NewNumber(float64(loc.Column))))
		}
		attrs.SourceMap, empty = sm, false
	}

	if empty {
		return nil
	}
	return attrs
}
