package nlu

import "fmt"

// UnknownIntentError reports an intent name absent from dataset metadata.
// Coming from a parse call it signals a corrupted or mismatched model, since
// parsers only ever return intents they were trained on.
type UnknownIntentError struct {
	Intent string
}

func (e *UnknownIntentError) Error() string {
	return fmt.Sprintf("unknown intent: %s", e.Intent)
}

// UnknownSlotError reports a slot name the given intent does not declare.
type UnknownSlotError struct {
	Intent string
	Slot   string
}

func (e *UnknownSlotError) Error() string {
	return fmt.Sprintf("unknown slot: %s", e.Slot)
}

// UnknownEntityError reports an entity identifier that should resolve to a
// builtin kind but does not.
type UnknownEntityError struct {
	Entity string
}

func (e *UnknownEntityError) Error() string {
	return fmt.Sprintf("unknown entity identifier: %s", e.Entity)
}
