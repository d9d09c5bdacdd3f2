package parser

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/erraggy/apielements/element"
)

// State holds the mutable data of one top-level parse: the component
// registry, the warning deduplication table and the document-wide
// uniqueness sets.
//
// A State belongs to exactly one parse and must not be shared between
// parses. It is not safe for concurrent use.
type State struct {
	logger Logger

	categories []string
	registry   map[string]*componentCategory

	warnings map[string]*Annotation

	ids     mapset.Set[string]
	schemes mapset.Set[string]
	flows   mapset.Set[string]
}

type componentCategory struct {
	ids     []string
	entries map[string]*element.Element
}

// StateOption configures a State.
type StateOption func(*State)

// WithLogger sets the logger used for debug output. The default discards
// everything.
func WithLogger(l Logger) StateOption {
	return func(s *State) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewState returns an empty State.
func NewState(opts ...StateOption) *State {
	s := &State{
		logger:   NopLogger{},
		registry: make(map[string]*componentCategory),
		warnings: make(map[string]*Annotation),
		ids:      mapset.NewThreadUnsafeSet[string](),
		schemes:  mapset.NewThreadUnsafeSet[string](),
		flows:    mapset.NewThreadUnsafeSet[string](),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Logger returns the logger configured for s.
func (s *State) Logger() Logger {
	return s.logger
}

// Warning returns a result holding a warning located at el.
//
// Warnings are deduplicated by exact message text: when the same message was
// already emitted during this parse, the existing annotation's Occurrences is
// incremented and the returned result is empty.
func (s *State) Warning(message string, el *element.Element) *ParseResult {
	if existing, ok := s.warnings[message]; ok {
		existing.Occurrences++
		return NewParseResult()
	}
	a := NewWarning(message, el)
	s.warnings[message] = a
	return Annotations(a)
}

// forget removes discarded warnings from the deduplication table.
func (s *State) forget(annotations ...*Annotation) {
	for _, a := range annotations {
		if s.warnings[a.Message] == a {
			delete(s.warnings, a.Message)
		}
	}
}

// RegisterComponents declares a component category and the ids it contains.
// Each id gets a placeholder entry with no parsed content so references can
// be resolved before any component is parsed. Registering a category again
// adds new ids and keeps existing entries.
func (s *State) RegisterComponents(category string, ids ...string) {
	c, ok := s.registry[category]
	if !ok {
		c = &componentCategory{entries: make(map[string]*element.Element)}
		s.registry[category] = c
		s.categories = append(s.categories, category)
	}
	for _, id := range ids {
		if _, exists := c.entries[id]; exists {
			continue
		}
		c.ids = append(c.ids, id)
		c.entries[id] = &element.Element{ID: id}
	}
	s.logger.Debug("registered components", "category", category, "count", len(ids))
}

// Define replaces the entry for id with a parsed element, registering the
// category and id when needed.
func (s *State) Define(category, id string, el *element.Element) {
	if el == nil {
		return
	}
	s.RegisterComponents(category, id)
	s.registry[category].entries[id] = el
}

// HasCategory reports whether category was registered.
func (s *State) HasCategory(category string) bool {
	_, ok := s.registry[category]
	return ok
}

// Categories returns the registered categories in registration order.
func (s *State) Categories() []string {
	return slices.Clone(s.categories)
}

// IDs returns the ids registered in category in registration order.
func (s *State) IDs(category string) []string {
	if c, ok := s.registry[category]; ok {
		return slices.Clone(c.ids)
	}
	return nil
}

// Components returns the entries of category in registration order.
// Entries that were never defined are placeholders with an empty Kind.
func (s *State) Components(category string) []*element.Element {
	c, ok := s.registry[category]
	if !ok {
		return nil
	}
	out := make([]*element.Element, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.entries[id])
	}
	return out
}

// Lookup returns the entry registered for id in category.
func (s *State) Lookup(category, id string) (*element.Element, bool) {
	c, ok := s.registry[category]
	if !ok {
		return nil, false
	}
	el, ok := c.entries[id]
	return el, ok
}

// Table returns the defined entries of category as a lookup table for named
// types. Placeholders are left out.
func (s *State) Table(category string) element.Table {
	t := element.Table{}
	c, ok := s.registry[category]
	if !ok {
		return t
	}
	for _, id := range c.ids {
		if el := c.entries[id]; isDefined(el) {
			t[id] = el
		}
	}
	return t
}

func isDefined(el *element.Element) bool {
	return el != nil && el.Kind != ""
}

// RegisterID records an identifier, such as an operationId, that must be
// unique within the document. It returns false when id was already taken.
func (s *State) RegisterID(id string) bool {
	return s.ids.Add(id)
}

// HasID reports whether id was registered.
func (s *State) HasID(id string) bool {
	return s.ids.Contains(id)
}

// RegisterScheme records an authentication scheme name. It returns false
// when the name was already taken.
func (s *State) RegisterScheme(name string) bool {
	return s.schemes.Add(name)
}

// HasScheme reports whether name was registered as a scheme.
func (s *State) HasScheme(name string) bool {
	return s.schemes.Contains(name)
}

// RegisterFlow records an OAuth flow name. It returns false when the name
// was already taken.
func (s *State) RegisterFlow(name string) bool {
	return s.flows.Add(name)
}

// HasFlow reports whether name was registered as a flow.
func (s *State) HasFlow(name string) bool {
	return s.flows.Contains(name)
}
