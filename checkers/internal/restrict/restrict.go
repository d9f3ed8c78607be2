// Package restrict implements the restriction table and the matching
// decision procedure behind the restrictedProperties checker.
//
// A restriction forbids an object name, a property name, or a specific
// object+property pair. The table is compiled once per checker
// activation and is read-only afterwards; queries never modify it and
// never fail.
package restrict

import (
	"fmt"
)

// Entry is one configured restriction. At least one of Object and
// Property must be set; Message is an optional free-text addition to
// the reported warning.
type Entry struct {
	Object   string `yaml:"object"`
	Property string `yaml:"property"`
	Message  string `yaml:"message"`
}

// DecodeEntries converts a loosely typed checker param value (as
// produced by YAML config decoding) into a restriction entry list.
func DecodeEntries(value interface{}) ([]Entry, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case []Entry:
		return v, nil
	case []interface{}:
		entries := make([]Entry, 0, len(v))
		for i, raw := range v {
			m, ok := raw.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("restriction %d: expected a mapping, got %T", i, raw)
			}
			var e Entry
			for key, val := range m {
				s, ok := val.(string)
				if !ok {
					return nil, fmt.Errorf("restriction %d: %s: expected a string, got %T", i, key, val)
				}
				switch key {
				case "object":
					e.Object = s
				case "property":
					e.Property = s
				case "message":
					e.Message = s
				default:
					return nil, fmt.Errorf("restriction %d: unknown key %q", i, key)
				}
			}
			entries = append(entries, e)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("expected a list of restrictions, got %T", value)
	}
}

// ValidateEntries checks the decoded entry list against the config
// schema: every entry names an object, a property, or both, and no two
// entries are identical.
func ValidateEntries(entries []Entry) error {
	seen := make(map[Entry]struct{}, len(entries))
	for i, e := range entries {
		if e.Object == "" && e.Property == "" {
			return fmt.Errorf("restriction %d: at least one of object and property must be set", i)
		}
		if _, ok := seen[e]; ok {
			return fmt.Errorf("restriction %d: duplicate entry", i)
		}
		seen[e] = struct{}{}
	}
	return nil
}

// MatchKind tells which restriction tier produced a match.
type MatchKind int

const (
	// ScopedObjectProperty matched an entry that names both the object
	// and the property.
	ScopedObjectProperty MatchKind = iota

	// GlobalProperty matched an entry that names only the property:
	// the property is forbidden on any object.
	GlobalProperty

	// GlobalObject matched an entry that names only the object:
	// every property access on that object is forbidden.
	GlobalObject
)

// Match is one restriction hit for a queried access.
type Match struct {
	// Property is the accessed property name the match is attributed to.
	Property string

	// Message is the entry's optional free-text message, empty if unset.
	Message string

	Kind MatchKind
}

// Model holds compiled restrictions. Built once with NewModel and
// read-only afterwards.
type Model struct {
	// scoped maps object name to the restricted properties of that
	// object, each with its configured message.
	scoped map[string]map[string]string

	// globalObjects maps object names that are restricted as a whole.
	globalObjects map[string]string

	// globalProperties maps property names restricted on any object.
	globalProperties map[string]string
}

// NewModel compiles the entry list into lookup tables. Malformed
// entries are rejected by ValidateEntries before this point; NewModel
// itself never fails.
func NewModel(entries []Entry) *Model {
	m := &Model{
		scoped:           make(map[string]map[string]string),
		globalObjects:    make(map[string]string),
		globalProperties: make(map[string]string),
	}
	for _, e := range entries {
		switch {
		case e.Object == "":
			m.globalProperties[e.Property] = e.Message
		case e.Property == "":
			m.globalObjects[e.Object] = e.Message
		default:
			props, ok := m.scoped[e.Object]
			if !ok {
				props = make(map[string]string)
				m.scoped[e.Object] = props
			}
			props[e.Property] = e.Message
		}
	}
	return m
}

// Empty reports whether the model holds no restrictions at all.
func (m *Model) Empty() bool {
	return len(m.scoped) == 0 && len(m.globalObjects) == 0 && len(m.globalProperties) == 0
}

// Query matches one access against the model and returns the matches
// in property order. The three tiers are mutually exclusive and are
// tried in priority order:
//
//  1. object+property entries for the accessed object: one match per
//     restricted property among those accessed;
//  2. property-only entries: one match per restricted property among
//     those accessed;
//  3. an object-only entry for the accessed object: a single match,
//     attributed to the first accessed property (a whole-object
//     violation cannot be attributed to more than one property).
//
// The properties argument must contain statically resolved property
// names only; an access that resolves no property name matches nothing.
func (m *Model) Query(object string, properties []string) []Match {
	if len(properties) == 0 {
		return nil
	}

	if props, ok := m.scoped[object]; ok {
		var matches []Match
		for _, p := range properties {
			if msg, ok := props[p]; ok {
				matches = append(matches, Match{Property: p, Message: msg, Kind: ScopedObjectProperty})
			}
		}
		if len(matches) > 0 {
			return matches
		}
	}

	var matches []Match
	for _, p := range properties {
		if msg, ok := m.globalProperties[p]; ok {
			matches = append(matches, Match{Property: p, Message: msg, Kind: GlobalProperty})
		}
	}
	if len(matches) > 0 {
		return matches
	}

	if msg, ok := m.globalObjects[object]; ok {
		return []Match{{Property: properties[0], Message: msg, Kind: GlobalObject}}
	}
	return nil
}
