package ontology

import (
	"encoding/json"
	"fmt"
)

// Range is a half-open [Start, End) character range into the input text.
// Offsets count runes, not bytes.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// IntentClassification identifies the matched intent and the confidence the
// winning parser assigned to it.
type IntentClassification struct {
	IntentName  string  `json:"intentName"`
	Probability float64 `json:"probability"`
}

// Slot is a fully resolved slot: a named parameter of the matched intent
// bound to a text span and a typed value.
//
// Range is set on every slot coming out of a parse, but stays nil for
// builtin slots extracted directly through ExtractSlot.
type Slot struct {
	RawValue string    `json:"rawValue"`
	Value    SlotValue `json:"value"`
	Range    *Range    `json:"range,omitempty"`
	Entity   string    `json:"entity"`
	SlotName string    `json:"slotName"`
}

// Result is the outcome of a parse call. Intent and Slots are jointly nil
// ("nothing matched") or jointly present (Slots possibly empty). Input is
// always echoed verbatim.
type Result struct {
	Input  string                `json:"input"`
	Intent *IntentClassification `json:"intent"`
	Slots  []Slot                `json:"slots"`
}

// ValueKind discriminates the SlotValue union.
type ValueKind string

const (
	KindCustom      ValueKind = "Custom"
	KindNumber      ValueKind = "Number"
	KindOrdinal     ValueKind = "Ordinal"
	KindDuration    ValueKind = "Duration"
	KindTemperature ValueKind = "Temperature"
	KindPercentage  ValueKind = "Percentage"
)

// DurationValue is the payload of a Duration slot value.
type DurationValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// TemperatureValue is the payload of a Temperature slot value.
type TemperatureValue struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// SlotValue is a tagged union over the supported value payloads: an opaque
// custom string or one of the builtin typed values.
type SlotValue struct {
	Kind  ValueKind
	Value any
}

// CustomValue builds a Custom slot value.
func CustomValue(v string) SlotValue {
	return SlotValue{Kind: KindCustom, Value: v}
}

// NumberValue builds a Number slot value.
func NumberValue(v float64) SlotValue {
	return SlotValue{Kind: KindNumber, Value: v}
}

// OrdinalValue builds an Ordinal slot value.
func OrdinalValue(v int) SlotValue {
	return SlotValue{Kind: KindOrdinal, Value: v}
}

// PercentageValue builds a Percentage slot value.
func PercentageValue(v float64) SlotValue {
	return SlotValue{Kind: KindPercentage, Value: v}
}

func (v SlotValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind  ValueKind `json:"kind"`
		Value any       `json:"value"`
	}{v.Kind, v.Value})
}

func (v *SlotValue) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind  ValueKind       `json:"kind"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v.Kind = raw.Kind

	switch raw.Kind {
	case KindCustom:
		var s string
		if err := json.Unmarshal(raw.Value, &s); err != nil {
			return err
		}
		v.Value = s
	case KindNumber, KindPercentage:
		var f float64
		if err := json.Unmarshal(raw.Value, &f); err != nil {
			return err
		}
		v.Value = f
	case KindOrdinal:
		var n int
		if err := json.Unmarshal(raw.Value, &n); err != nil {
			return err
		}
		v.Value = n
	case KindDuration:
		var d DurationValue
		if err := json.Unmarshal(raw.Value, &d); err != nil {
			return err
		}
		v.Value = d
	case KindTemperature:
		var t TemperatureValue
		if err := json.Unmarshal(raw.Value, &t); err != nil {
			return err
		}
		v.Value = t
	default:
		return fmt.Errorf("unknown slot value kind %q", raw.Kind)
	}
	return nil
}
