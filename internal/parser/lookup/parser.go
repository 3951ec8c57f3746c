// Package lookup implements the table-based intent parser variant: an exact
// map from normalized utterances to an intent plus pre-tagged slot spans.
// It is cheap and precise but only fires on utterances seen at training time.
package lookup

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
	"github.com/parlancehq/parlance/internal/parser"
)

// UnitName is the processing unit discriminator for this variant.
const UnitName = "lookup_intent_parser"

// ConfigFile holds the persisted lookup table inside the unit directory.
const ConfigFile = "config.json"

// TaggedSlot is a pre-tagged slot span inside a table entry. The range is
// relative to the normalized utterance.
type TaggedSlot struct {
	SlotName string         `json:"slot_name"`
	Entity   string         `json:"entity"`
	Range    ontology.Range `json:"range"`
}

// Entry is one lookup table row.
type Entry struct {
	Intent string       `json:"intent"`
	Slots  []TaggedSlot `json:"slots,omitempty"`
}

// Config is the persisted configuration of a lookup parser unit.
type Config struct {
	LanguageCode string           `json:"language_code"`
	Map          map[string]Entry `json:"map"`
}

// Parser resolves utterances by exact lookup after normalization.
type Parser struct {
	table     map[string]Entry
	resources *entity.SharedResources
}

// Load reads the unit's config from dir.
func Load(dir string, res *entity.SharedResources) (*Parser, error) {
	var cfg Config
	if err := model.ReadJSONFile(filepath.Join(dir, ConfigFile), &cfg); err != nil {
		return nil, err
	}
	return New(&cfg, res), nil
}

// New builds a parser from an in-memory config.
func New(cfg *Config, res *entity.SharedResources) *Parser {
	table := make(map[string]Entry, len(cfg.Map))
	for key, entry := range cfg.Map {
		table[normalize(key)] = entry
	}
	return &Parser{table: table, resources: res}
}

// Parse implements parser.IntentParser.
func (p *Parser) Parse(text string, intents map[string]struct{}) (*parser.InternalParsingResult, error) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	offset := utf8.RuneCountInString(text) - utf8.RuneCountInString(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)

	entry, ok := p.table[normalize(trimmed)]
	if !ok {
		return nil, nil
	}
	if intents != nil {
		if _, allowed := intents[entry.Intent]; !allowed {
			return nil, nil
		}
	}

	slots := make([]parser.InternalSlot, 0, len(entry.Slots))
	runes := []rune(text)
	for _, tagged := range entry.Slots {
		r := ontology.Range{Start: tagged.Range.Start + offset, End: tagged.Range.End + offset}
		if r.Start < 0 || r.End > len(runes) || r.Start >= r.End {
			continue
		}
		slots = append(slots, parser.InternalSlot{
			Value:    string(runes[r.Start:r.End]),
			Range:    r,
			Entity:   tagged.Entity,
			SlotName: tagged.SlotName,
		})
	}

	return &parser.InternalParsingResult{
		Intent: ontology.IntentClassification{IntentName: entry.Intent, Probability: 1.0},
		Slots:  slots,
	}, nil
}

// normalize folds case and whitespace runs so that table keys are stable
// against trivial surface variation.
func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
