package nlu

import (
	"unicode/utf8"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
	"github.com/parlancehq/parlance/internal/parser"
)

// resolveSlots turns raw parser slots into resolved slots. Extraction runs
// once over the whole text per subsystem and the results are shared across
// slots. Output preserves slot order and yields at most one resolved slot
// per input slot; slots that fail to resolve are dropped, not errors.
func (e *Engine) resolveSlots(
	text string,
	slots []parser.InternalSlot,
	builtinScope []ontology.BuiltinKind,
	customScope []string,
) ([]ontology.Slot, error) {
	builtinEntities, err := e.resources.Builtin.Extract(text, builtinScope)
	if err != nil {
		return nil, err
	}
	customEntities, err := e.resources.Custom.Extract(text, customScope)
	if err != nil {
		return nil, err
	}

	resolved := make([]ontology.Slot, 0, len(slots))
	for _, slot := range slots {
		if def, isCustom := e.metadata.Entities[slot.Entity]; isCustom {
			if s, ok := resolveCustomSlot(text, slot, def, customEntities); ok {
				resolved = append(resolved, s)
			}
			continue
		}
		s, ok, err := resolveBuiltinSlot(text, slot, builtinEntities)
		if err != nil {
			return nil, err
		}
		if ok {
			resolved = append(resolved, s)
		}
	}
	return resolved, nil
}

// resolveCustomSlot binds a custom slot to the first extraction match of its
// entity. With no match, an automatically extensible entity swallows the
// whole utterance as its value; otherwise the slot is dropped.
func resolveCustomSlot(text string, slot parser.InternalSlot, def model.Entity, matches []entity.CustomEntity) (ontology.Slot, bool) {
	for _, m := range matches {
		if m.EntityIdentifier != slot.Entity {
			continue
		}
		r := m.Range
		return ontology.Slot{
			RawValue: m.Value,
			Value:    ontology.CustomValue(m.ResolvedValue),
			Range:    &r,
			Entity:   slot.Entity,
			SlotName: slot.SlotName,
		}, true
	}
	if def.AutomaticallyExtensible {
		return wholeTextSlot(text, slot.Entity, slot.SlotName), true
	}
	return ontology.Slot{}, false
}

// resolveBuiltinSlot binds a builtin slot to the first extraction match of
// its kind. RawValue is cut from the input by the match's character range and
// the match's range becomes the slot range. No extensibility fallback exists
// for builtin entities.
func resolveBuiltinSlot(text string, slot parser.InternalSlot, matches []entity.BuiltinEntity) (ontology.Slot, bool, error) {
	kind, err := ontology.KindFromIdentifier(slot.Entity)
	if err != nil {
		return ontology.Slot{}, false, &UnknownEntityError{Entity: slot.Entity}
	}
	for _, m := range matches {
		if m.Kind != kind {
			continue
		}
		r := m.Range
		return ontology.Slot{
			RawValue: charRangeSubstring(text, m.Range),
			Value:    m.Entity,
			Range:    &r,
			Entity:   slot.Entity,
			SlotName: slot.SlotName,
		}, true, nil
	}
	return ontology.Slot{}, false, nil
}

// wholeTextSlot synthesizes the extensible fallback slot spanning the entire
// input. The range counts characters, not bytes.
func wholeTextSlot(text, entityName, slotName string) ontology.Slot {
	r := ontology.Range{Start: 0, End: utf8.RuneCountInString(text)}
	return ontology.Slot{
		RawValue: text,
		Value:    ontology.CustomValue(text),
		Range:    &r,
		Entity:   entityName,
		SlotName: slotName,
	}
}

// charRangeSubstring cuts text by rune offsets.
func charRangeSubstring(text string, r ontology.Range) string {
	runes := []rune(text)
	if r.Start < 0 || r.End > len(runes) || r.Start >= r.End {
		return ""
	}
	return string(runes[r.Start:r.End])
}
