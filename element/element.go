package element

import "slices"

// Content is the kind dependent payload of an element.
// The set of implementations is closed: Bool, Number, String, Items,
// *Member and *Element.
type Content interface {
	isContent()
}

// Bool is the content of a boolean element.
type Bool bool

// Number is the content of a number element.
type Number float64

// String is the content of a string element, or the target id of a ref.
type String string

// Items is the ordered content of array, object and named-type elements.
// Object items are member elements.
type Items []*Element

// Member is the content of a member element. Value may be nil.
type Member struct {
	Key   *Element
	Value *Element
}

func (Bool) isContent()     {}
func (Number) isContent()   {}
func (String) isContent()   {}
func (Items) isContent()    {}
func (*Member) isContent()  {}
func (*Element) isContent() {}

// Element is a node of an API Elements tree.
type Element struct {
	// Kind is a base kind or the name of a named type
	Kind Kind
	// Content is nil when the element has no value
	Content Content

	// ID names the element so it can be found through a Table
	ID string
	// Title and Description are human readable metadata
	Title       string
	Description string
	// Classes are free-form tags such as "api" or "dataStructures"
	Classes []string

	TypeAttributes TypeAttributes
	Default        *Element
	Samples        []*Element
	Enumerations   []*Element
	SourceMap      []SourceLocation
}

// New returns an element of the given kind with no content.
func New(kind Kind) *Element {
	return &Element{Kind: kind}
}

// NewBoolean returns a boolean element.
func NewBoolean(b bool) *Element {
	return &Element{Kind: KindBoolean, Content: Bool(b)}
}

// NewNumber returns a number element.
func NewNumber(n float64) *Element {
	return &Element{Kind: KindNumber, Content: Number(n)}
}

// NewString returns a string element.
func NewString(s string) *Element {
	return &Element{Kind: KindString, Content: String(s)}
}

// NewNull returns a null element.
func NewNull() *Element {
	return &Element{Kind: KindNull}
}

// NewArray returns an array element holding items in order.
func NewArray(items ...*Element) *Element {
	return &Element{Kind: KindArray, Content: Items(items)}
}

// NewObject returns an object element holding members in order.
func NewObject(members ...*Element) *Element {
	return &Element{Kind: KindObject, Content: Items(members)}
}

// NewEnum returns an enum element. value may be nil when no value is selected.
func NewEnum(value *Element, enumerations ...*Element) *Element {
	e := &Element{Kind: KindEnum, Enumerations: enumerations}
	if value != nil {
		e.Content = value
	}
	return e
}

// NewMember returns a member element with a string key.
func NewMember(key string, value *Element) *Element {
	return NewMemberElement(NewString(key), value)
}

// NewMemberElement returns a member element with an arbitrary key element.
func NewMemberElement(key, value *Element) *Element {
	return &Element{Kind: KindMember, Content: &Member{Key: key, Value: value}}
}

// NewRef returns a ref element pointing at the element identified by id.
func NewRef(id string) *Element {
	return &Element{Kind: KindRef, Content: String(id)}
}

// NewNamed returns an element of a named type with no content of its own.
func NewNamed(name string) *Element {
	return &Element{Kind: Kind(name)}
}

// IsPrimitive reports whether e has a primitive kind.
func (e *Element) IsPrimitive() bool {
	return e != nil && e.Kind.IsPrimitive()
}

// HasContent reports whether e carries a value of its own.
func (e *Element) HasContent() bool {
	return e != nil && e.Content != nil
}

// Is reports whether e is of kind k.
func (e *Element) Is(k Kind) bool {
	return e != nil && e.Kind == k
}

// IsValueless reports whether e is a boolean, number or string element
// without a literal value.
func (e *Element) IsValueless() bool {
	return e != nil && e.Kind.IsPrimitive() && e.Kind != KindNull && e.Content == nil
}

// Items returns the ordered children of e, or nil when e has none.
func (e *Element) Items() []*Element {
	if e == nil {
		return nil
	}
	if items, ok := e.Content.(Items); ok {
		return items
	}
	return nil
}

// Member returns the key/value pair of a member element.
func (e *Element) Member() *Member {
	if e == nil {
		return nil
	}
	m, _ := e.Content.(*Member)
	return m
}

// Key returns the key element of a member, or nil.
func (e *Element) Key() *Element {
	if m := e.Member(); m != nil {
		return m.Key
	}
	return nil
}

// Value returns the value element of a member, or nil.
func (e *Element) Value() *Element {
	if m := e.Member(); m != nil {
		return m.Value
	}
	return nil
}

// KeyString returns the key of a member as a string.
func (e *Element) KeyString() string {
	s, _ := e.Key().StringValue()
	return s
}

// Selected returns the selected value of an enum element.
func (e *Element) Selected() *Element {
	if e == nil {
		return nil
	}
	v, _ := e.Content.(*Element)
	return v
}

// StringValue returns the literal of a string or ref element.
func (e *Element) StringValue() (string, bool) {
	if e == nil {
		return "", false
	}
	s, ok := e.Content.(String)
	return string(s), ok
}

// BoolValue returns the literal of a boolean element.
func (e *Element) BoolValue() (bool, bool) {
	if e == nil {
		return false, false
	}
	b, ok := e.Content.(Bool)
	return bool(b), ok
}

// NumberValue returns the literal of a number element.
func (e *Element) NumberValue() (float64, bool) {
	if e == nil {
		return 0, false
	}
	n, ok := e.Content.(Number)
	return float64(n), ok
}

// GetMember returns the first member of an object whose key equals key.
func (e *Element) GetMember(key string) *Element {
	for _, item := range e.Items() {
		if item.Kind == KindMember && item.KeyString() == key {
			return item
		}
	}
	return nil
}

// Get returns the value of the member keyed key, or nil.
func (e *Element) Get(key string) *Element {
	return e.GetMember(key).Value()
}

// HasKey reports whether an object has a member keyed key.
func (e *Element) HasKey(key string) bool {
	return e.GetMember(key) != nil
}

// Keys returns the member keys of an object in order.
func (e *Element) Keys() []string {
	var keys []string
	for _, item := range e.Items() {
		if item.Kind == KindMember {
			keys = append(keys, item.KeyString())
		}
	}
	return keys
}

// Append adds children to an array, object or named-type element.
func (e *Element) Append(children ...*Element) *Element {
	items, _ := e.Content.(Items)
	e.Content = append(items, children...)
	return e
}

// Set replaces the value of the member keyed key, or appends a new member.
func (e *Element) Set(key string, value *Element) *Element {
	if m := e.GetMember(key); m != nil {
		m.Member().Value = value
		return e
	}
	return e.Append(NewMember(key, value))
}

// Len returns the number of children of e.
func (e *Element) Len() int {
	return len(e.Items())
}

// IsEmpty reports whether a container has no children.
func (e *Element) IsEmpty() bool {
	return e.Len() == 0
}

// HasClass reports whether e is tagged with class.
func (e *Element) HasClass(class string) bool {
	return e != nil && slices.Contains(e.Classes, class)
}

// AddClass tags e with class and returns e.
func (e *Element) AddClass(class string) *Element {
	if !e.HasClass(class) {
		e.Classes = append(e.Classes, class)
	}
	return e
}

// Clone returns a deep copy of e.
func (e *Element) Clone() *Element {
	if e == nil {
		return nil
	}
	c := *e
	c.Classes = slices.Clone(e.Classes)
	c.SourceMap = slices.Clone(e.SourceMap)
	c.Default = e.Default.Clone()
	c.Samples = cloneAll(e.Samples)
	c.Enumerations = cloneAll(e.Enumerations)

	switch content := e.Content.(type) {
	case Items:
		c.Content = Items(cloneAll(content))
	case *Member:
		c.Content = &Member{Key: content.Key.Clone(), Value: content.Value.Clone()}
	case *Element:
		c.Content = content.Clone()
	}
	return &c
}

func cloneAll(elements []*Element) []*Element {
	if elements == nil {
		return nil
	}
	out := make([]*Element, len(elements))
	for i, el := range elements {
		out[i] = el.Clone()
	}
	return out
}
