// Package deterministic implements the rule-based intent parser variant:
// each intent carries a set of anchored regex patterns whose named capture
// groups tag slot spans. It ranks first in shipped models because a pattern
// hit is an exact, unambiguous classification.
package deterministic

import (
	"fmt"
	"path/filepath"
	"regexp"
	"sort"
	"unicode/utf8"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
	"github.com/parlancehq/parlance/internal/parser"
)

// UnitName is the processing unit discriminator for this variant.
const UnitName = "deterministic_intent_parser"

// ConfigFile holds the persisted patterns inside the unit directory.
const ConfigFile = "config.json"

// Config is the persisted configuration of a deterministic parser unit.
type Config struct {
	LanguageCode string `json:"language_code"`
	// Patterns maps intent name to its regex patterns. Group names used in
	// the patterns are resolved through GroupNamesToSlotNames.
	Patterns              map[string][]string          `json:"patterns"`
	GroupNamesToSlotNames map[string]string            `json:"group_names_to_slot_names"`
	SlotNamesToEntities   map[string]map[string]string `json:"slot_names_to_entities"`
}

type intentPatterns struct {
	intent   string
	regexes  []*regexp.Regexp
	entities map[string]string // slot name -> entity identifier
}

// Parser matches input against per-intent regex patterns.
type Parser struct {
	intents    []intentPatterns
	groupSlots map[string]string
	resources  *entity.SharedResources
}

// Load reads the unit's config from dir and compiles its patterns.
func Load(dir string, res *entity.SharedResources) (*Parser, error) {
	var cfg Config
	if err := model.ReadJSONFile(filepath.Join(dir, ConfigFile), &cfg); err != nil {
		return nil, err
	}
	return New(&cfg, res)
}

// New builds a parser from an in-memory config.
func New(cfg *Config, res *entity.SharedResources) (*Parser, error) {
	p := &Parser{
		groupSlots: cfg.GroupNamesToSlotNames,
		resources:  res,
	}

	// Map iteration order is random; fix the cascade order inside this
	// parser by intent name so repeated parses are deterministic.
	names := make([]string, 0, len(cfg.Patterns))
	for name := range cfg.Patterns {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ip := intentPatterns{intent: name, entities: cfg.SlotNamesToEntities[name]}
		for _, pattern := range cfg.Patterns[name] {
			re, err := regexp.Compile(pattern)
			if err != nil {
				return nil, fmt.Errorf("intent %q: compile pattern %q: %w", name, pattern, err)
			}
			ip.regexes = append(ip.regexes, re)
		}
		p.intents = append(p.intents, ip)
	}
	return p, nil
}

// Parse implements parser.IntentParser.
func (p *Parser) Parse(text string, intents map[string]struct{}) (*parser.InternalParsingResult, error) {
	for _, ip := range p.intents {
		if intents != nil {
			if _, ok := intents[ip.intent]; !ok {
				continue
			}
		}
		for _, re := range ip.regexes {
			loc := re.FindStringSubmatchIndex(text)
			if loc == nil {
				continue
			}
			slots, err := p.slotsFromMatch(text, re, loc, ip)
			if err != nil {
				return nil, err
			}
			return &parser.InternalParsingResult{
				Intent: ontology.IntentClassification{IntentName: ip.intent, Probability: 1.0},
				Slots:  slots,
			}, nil
		}
	}
	return nil, nil
}

func (p *Parser) slotsFromMatch(text string, re *regexp.Regexp, loc []int, ip intentPatterns) ([]parser.InternalSlot, error) {
	var slots []parser.InternalSlot
	for groupIdx, groupName := range re.SubexpNames() {
		if groupName == "" {
			continue
		}
		slotName, ok := p.groupSlots[groupName]
		if !ok {
			return nil, fmt.Errorf("pattern group %q has no slot name mapping", groupName)
		}
		byteStart, byteEnd := loc[2*groupIdx], loc[2*groupIdx+1]
		if byteStart < 0 {
			continue // optional group, not captured
		}
		entityName, ok := ip.entities[slotName]
		if !ok {
			return nil, fmt.Errorf("intent %q: slot %q has no entity mapping", ip.intent, slotName)
		}
		slots = append(slots, parser.InternalSlot{
			Value: text[byteStart:byteEnd],
			Range: ontology.Range{
				Start: utf8.RuneCountInString(text[:byteStart]),
				End:   utf8.RuneCountInString(text[:byteEnd]),
			},
			Entity:   entityName,
			SlotName: slotName,
		})
	}
	sort.SliceStable(slots, func(i, j int) bool { return slots[i].Range.Start < slots[j].Range.Start })
	return slots, nil
}
