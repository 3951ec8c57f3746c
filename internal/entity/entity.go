// Package entity holds the two entity extraction subsystems the engine
// shares with every intent parser: the builtin typed recognizers (numbers,
// ordinals, durations, ...) and the custom gazetteer parser built from the
// dataset's entity dictionaries.
package entity

import (
	"github.com/parlancehq/parlance/internal/ontology"
)

// BuiltinEntity is one match produced by the builtin parser.
type BuiltinEntity struct {
	// Value is the matched substring of the input.
	Value string
	// Range is the matched rune range in the input.
	Range ontology.Range
	// Entity is the typed value the recognizer resolved.
	Entity ontology.SlotValue
	// Kind identifies the recognizer that produced the match.
	Kind ontology.BuiltinKind
}

// CustomEntity is one match produced by the custom parser.
type CustomEntity struct {
	// Value is the matched substring of the input.
	Value string
	// ResolvedValue is the canonical value from the entity dictionary.
	ResolvedValue string
	// Range is the matched rune range in the input.
	Range ontology.Range
	// EntityIdentifier names the custom entity that matched.
	EntityIdentifier string
}

// BuiltinExtractor extracts builtin typed entities from text, restricted to
// the given kinds. A nil or empty scope extracts nothing.
type BuiltinExtractor interface {
	Extract(text string, scope []ontology.BuiltinKind) ([]BuiltinEntity, error)
}

// CustomExtractor extracts custom entities from text, restricted to the
// given entity names. A nil or empty scope extracts nothing.
type CustomExtractor interface {
	Extract(text string, scope []string) ([]CustomEntity, error)
}

// SharedResources bundles the two extractors. It is built once at model load
// time and shared by pointer with every parser and with the engine's slot
// resolver. Nothing mutates it after construction, so it is safe for any
// number of concurrent parse calls.
type SharedResources struct {
	Builtin BuiltinExtractor
	Custom  CustomExtractor

	// StopWords holds the language's stop words from the bundle's
	// resources directory, lower-cased. May be empty.
	StopWords map[string]struct{}
}
