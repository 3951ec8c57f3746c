package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// descriptorSchema is the JSON schema every nlu_engine.json must satisfy
// before it is decoded. Validating up front turns vague decode errors into
// field-level diagnostics.
const descriptorSchema = `{
  "type": "object",
  "required": ["model_version", "dataset_metadata", "intent_parsers", "builtin_entity_parser", "custom_entity_parser"],
  "properties": {
    "model_version": {"type": "string"},
    "dataset_metadata": {
      "type": "object",
      "required": ["language_code", "slot_name_mappings", "entities"],
      "properties": {
        "language_code": {"type": "string"},
        "slot_name_mappings": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "additionalProperties": {"type": "string"}
          }
        },
        "entities": {
          "type": "object",
          "additionalProperties": {
            "type": "object",
            "properties": {
              "automatically_extensible": {"type": "boolean"}
            }
          }
        }
      }
    },
    "intent_parsers": {
      "type": "array",
      "items": {"type": "string"}
    },
    "builtin_entity_parser": {"type": "string"},
    "custom_entity_parser": {"type": "string"}
  }
}`

// validateDescriptor checks raw nlu_engine.json bytes against the descriptor
// schema. The model version itself is checked separately so that a version
// mismatch is reported as WrongModelVersionError, not a schema failure.
func validateDescriptor(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(descriptorSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("invalid engine descriptor: %s", strings.Join(msgs, "; "))
	}
	return nil
}
