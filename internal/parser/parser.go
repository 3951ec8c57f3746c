// Package parser defines the contract every intent parser variant
// satisfies. The engine holds an ordered list of IntentParser values and
// never depends on a specific variant's internals.
package parser

import (
	"github.com/parlancehq/parlance/internal/ontology"
)

// MetadataFile is the per-parser metadata file name inside a bundle.
const MetadataFile = "metadata.json"

// ProcessingUnitMetadata tags which parser variant a persisted unit holds.
// Variant-specific configuration lives in the unit's own files.
type ProcessingUnitMetadata struct {
	UnitName string `json:"unit_name"`
}

// InternalSlot is a raw slot as tagged by an intent parser: a text span
// bound to a slot name and an entity reference, with no resolved value yet.
type InternalSlot struct {
	Value    string
	Range    ontology.Range
	Entity   string
	SlotName string
}

// InternalParsingResult is a successful match from one parser.
type InternalParsingResult struct {
	Intent ontology.IntentClassification
	Slots  []InternalSlot
}

// IntentParser is one strategy in the cascade. Parse returns nil (not an
// error) when the parser declines the input; errors are reserved for real
// failures and abort the whole parse call.
//
// intents, when non-nil, restricts which intents the parser may return.
type IntentParser interface {
	Parse(text string, intents map[string]struct{}) (*InternalParsingResult, error)
}
