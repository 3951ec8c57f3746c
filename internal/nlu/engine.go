// Package nlu is the inference engine: it composes a pre-trained model
// bundle's intent parsers and entity extractors into Parse and ExtractSlot
// calls. It holds no training logic.
package nlu

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
	"github.com/parlancehq/parlance/internal/parser"
)

// Engine answers parse queries against one loaded model. It is immutable
// after construction and safe for concurrent use; a failed call leaves it
// fully usable for subsequent calls.
type Engine struct {
	metadata  model.DatasetMetadata
	parsers   []parser.IntentParser
	resources *entity.SharedResources
	log       *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a logger; the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// New assembles an engine from already-loaded components. Most callers use
// Load or LoadArchive instead; New exists for embedding and for tests that
// inject their own extractors.
func New(meta model.DatasetMetadata, parsers []parser.IntentParser, res *entity.SharedResources, opts ...Option) *Engine {
	e := &Engine{
		metadata:  meta,
		parsers:   parsers,
		resources: res,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Parse classifies text into an intent and resolves its slots.
//
// intentsFilter, when non-nil, restricts which intents may match. "Nothing
// matched" is a normal outcome: the result echoes the input with nil intent
// and slots, and no error.
func (e *Engine) Parse(text string, intentsFilter []string) (ontology.Result, error) {
	if len(e.parsers) == 0 {
		return ontology.Result{Input: text}, nil
	}

	var intents map[string]struct{}
	if intentsFilter != nil {
		intents = make(map[string]struct{}, len(intentsFilter))
		for _, name := range intentsFilter {
			intents[name] = struct{}{}
		}
	}

	for i, p := range e.parsers {
		internal, err := p.Parse(text, intents)
		if err != nil {
			return ontology.Result{}, err
		}
		if internal == nil {
			continue
		}
		e.log.Debug("intent matched",
			zap.Int("parser", i),
			zap.String("intent", internal.Intent.IntentName),
			zap.Int("rawSlots", len(internal.Slots)))

		builtinScope, err := e.builtinScope(internal.Intent.IntentName)
		if err != nil {
			return ontology.Result{}, err
		}
		slots, err := e.resolveSlots(text, internal.Slots, builtinScope, e.customScope())
		if err != nil {
			return ontology.Result{}, fmt.Errorf("cannot resolve slots: %w", err)
		}

		intent := internal.Intent
		return ontology.Result{Input: text, Intent: &intent, Slots: slots}, nil
	}

	return ontology.Result{Input: text}, nil
}

// builtinScope derives the builtin entity kinds relevant to intentName from
// its slot mappings, deduplicated. The intent missing from metadata means
// the model is corrupted or mismatched: parsers only return trained intents.
func (e *Engine) builtinScope(intentName string) ([]ontology.BuiltinKind, error) {
	mappings, ok := e.metadata.SlotNameMappings[intentName]
	if !ok {
		return nil, &UnknownIntentError{Intent: intentName}
	}
	var scope []ontology.BuiltinKind
	seen := make(map[ontology.BuiltinKind]struct{})
	for _, entityName := range mappings {
		kind, err := ontology.KindFromIdentifier(entityName)
		if err != nil {
			continue // custom entity
		}
		if _, dup := seen[kind]; dup {
			continue
		}
		seen[kind] = struct{}{}
		scope = append(scope, kind)
	}
	return scope, nil
}

// customScope is every custom entity declared in metadata; custom scoping is
// not narrowed per intent.
func (e *Engine) customScope() []string {
	scope := make([]string, 0, len(e.metadata.Entities))
	for name := range e.metadata.Entities {
		scope = append(scope, name)
	}
	return scope
}
