package element

import "strings"

// Kind names the type of an element.
type Kind string

// Base kinds. Any other non-empty Kind is a named type.
const (
	KindBoolean Kind = "boolean"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindNull    Kind = "null"
	KindArray   Kind = "array"
	KindObject  Kind = "object"
	KindEnum    Kind = "enum"
	KindMember  Kind = "member"
	KindRef     Kind = "ref"
)

// IsBase reports whether k is one of the built-in kinds.
func (k Kind) IsBase() bool {
	switch k {
	case KindBoolean, KindNumber, KindString, KindNull,
		KindArray, KindObject, KindEnum, KindMember, KindRef:
		return true
	}
	return false
}

// IsNamed reports whether k refers to a user or schema defined type.
func (k Kind) IsNamed() bool {
	return k != "" && !k.IsBase()
}

// IsPrimitive reports whether k is boolean, number, string or null.
func (k Kind) IsPrimitive() bool {
	switch k {
	case KindBoolean, KindNumber, KindString, KindNull:
		return true
	}
	return false
}

// TypeAttributes is a set of the type attribute flags an element may carry.
type TypeAttributes uint8

const (
	Required TypeAttributes = 1 << iota
	Optional
	Fixed
	FixedType
	Nullable
)

var typeAttributeNames = []struct {
	attr TypeAttributes
	name string
}{
	{Required, "required"},
	{Optional, "optional"},
	{Fixed, "fixed"},
	{FixedType, "fixedType"},
	{Nullable, "nullable"},
}

// Has reports whether every flag in a is set.
func (t TypeAttributes) Has(a TypeAttributes) bool {
	return a != 0 && t&a == a
}

// With returns t with the flags in a added.
func (t TypeAttributes) With(a TypeAttributes) TypeAttributes {
	return t | a
}

// Without returns t with the flags in a cleared.
func (t TypeAttributes) Without(a TypeAttributes) TypeAttributes {
	return t &^ a
}

// Names returns the refract names of the set flags in canonical order.
func (t TypeAttributes) Names() []string {
	var names []string
	for _, n := range typeAttributeNames {
		if t.Has(n.attr) {
			names = append(names, n.name)
		}
	}
	return names
}

func (t TypeAttributes) String() string {
	return strings.Join(t.Names(), ",")
}

// ParseTypeAttribute maps a refract type attribute name to its flag.
func ParseTypeAttribute(name string) (TypeAttributes, bool) {
	for _, n := range typeAttributeNames {
		if n.name == name {
			return n.attr, true
		}
	}
	return 0, false
}
