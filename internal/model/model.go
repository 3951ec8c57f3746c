package model

// Version is the model bundle version this engine understands. A bundle
// whose descriptor declares any other version is rejected at load time.
const Version = "0.20.0"

// DescriptorFile is the name of the top-level model descriptor inside a
// bundle directory.
const DescriptorFile = "nlu_engine.json"

// Entity is a custom entity definition from dataset metadata. When
// AutomaticallyExtensible is set, a slot tagged with this entity that no
// gazetteer match covers still resolves, taking the whole input as its value.
type Entity struct {
	AutomaticallyExtensible bool `json:"automatically_extensible"`
}

// DatasetMetadata describes the trained dataset: its language, the
// slot-name -> entity mapping of every intent, and the custom entity
// definitions. Immutable after load.
type DatasetMetadata struct {
	LanguageCode     string                       `json:"language_code"`
	SlotNameMappings map[string]map[string]string `json:"slot_name_mappings"`
	Entities         map[string]Entity            `json:"entities"`
}

// EngineModel is the decoded nlu_engine.json descriptor.
//
// IntentParsers holds parser directory names in cascade order; the order is
// semantically significant and is preserved exactly as declared.
type EngineModel struct {
	ModelVersion        string          `json:"model_version"`
	DatasetMetadata     DatasetMetadata `json:"dataset_metadata"`
	IntentParsers       []string        `json:"intent_parsers"`
	BuiltinEntityParser string          `json:"builtin_entity_parser"`
	CustomEntityParser  string          `json:"custom_entity_parser"`
}
