package nlu

import (
	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
)

// ExtractSlot resolves a single named slot directly from metadata,
// bypassing the intent parser cascade. A nil slot with nil error means the
// slot did not resolve; unknown intent or slot names are hard errors.
func (e *Engine) ExtractSlot(text, intentName, slotName string) (*ontology.Slot, error) {
	mappings, ok := e.metadata.SlotNameMappings[intentName]
	if !ok {
		return nil, &UnknownIntentError{Intent: intentName}
	}
	entityName, ok := mappings[slotName]
	if !ok {
		return nil, &UnknownSlotError{Intent: intentName, Slot: slotName}
	}

	if def, isCustom := e.metadata.Entities[entityName]; isCustom {
		return extractCustomSlot(text, entityName, slotName, def, e.resources.Custom)
	}
	return extractBuiltinSlot(text, entityName, slotName, e.resources.Builtin)
}

// extractCustomSlot scopes extraction to exactly one entity and takes the
// last match in extraction order. Note the deliberate asymmetry with
// extractBuiltinSlot, which takes the first; both tie-breaks are pinned by
// tests.
func extractCustomSlot(text, entityName, slotName string, def model.Entity, extractor entity.CustomExtractor) (*ontology.Slot, error) {
	matches, err := extractor.Extract(text, []string{entityName})
	if err != nil {
		return nil, err
	}
	if len(matches) > 0 {
		m := matches[len(matches)-1]
		r := m.Range
		return &ontology.Slot{
			RawValue: m.Value,
			Value:    ontology.CustomValue(m.ResolvedValue),
			Range:    &r,
			Entity:   entityName,
			SlotName: slotName,
		}, nil
	}
	if def.AutomaticallyExtensible {
		s := wholeTextSlot(text, entityName, slotName)
		return &s, nil
	}
	return nil, nil
}

func extractBuiltinSlot(text, entityName, slotName string, extractor entity.BuiltinExtractor) (*ontology.Slot, error) {
	kind, err := ontology.KindFromIdentifier(entityName)
	if err != nil {
		return nil, &UnknownEntityError{Entity: entityName}
	}
	matches, err := extractor.Extract(text, []ontology.BuiltinKind{kind})
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, nil
	}
	m := matches[0]
	return &ontology.Slot{
		RawValue: charRangeSubstring(text, m.Range),
		Value:    m.Entity,
		Range:    nil,
		Entity:   entityName,
		SlotName: slotName,
	}, nil
}
