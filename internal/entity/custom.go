package entity

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/parlancehq/parlance/internal/ontology"
)

// extractionCacheSize bounds the custom parser's memoized extractions.
const extractionCacheSize = 256

// GazetteerValue is one dictionary entry of a custom entity: a canonical
// value plus the synonyms that resolve to it.
type GazetteerValue struct {
	Value         string   `json:"value"`
	ResolvedValue string   `json:"resolved_value"`
	Synonyms      []string `json:"synonyms,omitempty"`
}

// GazetteerEntity is the persisted dictionary of one custom entity.
type GazetteerEntity struct {
	Values []GazetteerValue `json:"values"`
}

// CustomParserModel is the persisted state of the custom entity parser
// (parser.json inside the custom parser directory of a bundle).
type CustomParserModel struct {
	Entities map[string]GazetteerEntity `json:"entities"`
}

type gazetteerEntry struct {
	entity   string
	resolved string
}

// CustomParser matches dataset-specific entity values by greedy
// longest-phrase lookup over the token stream, case folded. The dictionary
// is immutable after construction; the only mutable state is the extraction
// cache, which carries its own lock.
type CustomParser struct {
	dict   map[string][]gazetteerEntry
	maxLen int

	mu    sync.Mutex
	cache *lru.Cache[string, []CustomEntity]
}

// NewCustomParser builds a parser from the persisted dictionaries.
func NewCustomParser(m *CustomParserModel) (*CustomParser, error) {
	cache, err := lru.New[string, []CustomEntity](extractionCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create extraction cache: %w", err)
	}

	p := &CustomParser{
		dict:   make(map[string][]gazetteerEntry),
		maxLen: 1,
		cache:  cache,
	}
	for name, ent := range m.Entities {
		for _, v := range ent.Values {
			resolved := v.ResolvedValue
			if resolved == "" {
				resolved = v.Value
			}
			p.addPhrase(name, v.Value, resolved)
			for _, syn := range v.Synonyms {
				p.addPhrase(name, syn, resolved)
			}
		}
	}
	return p, nil
}

func (p *CustomParser) addPhrase(entity, phrase, resolved string) {
	key := phraseKey(phrase)
	if key == "" {
		return
	}
	p.dict[key] = append(p.dict[key], gazetteerEntry{entity: entity, resolved: resolved})
	if n := len(strings.Fields(key)); n > p.maxLen {
		p.maxLen = n
	}
}

func phraseKey(phrase string) string {
	tokens := tokenize(phrase)
	parts := make([]string, 0, len(tokens))
	for _, t := range tokens {
		parts = append(parts, strings.ToLower(t.Text))
	}
	return strings.Join(parts, " ")
}

// Extract finds gazetteer matches in text, restricted to the entity names in
// scope. Matches are reported left to right; longer phrases win over shorter
// ones starting at the same token.
func (p *CustomParser) Extract(text string, scope []string) ([]CustomEntity, error) {
	if len(scope) == 0 {
		return nil, nil
	}

	key := cacheKey(text, scope)
	p.mu.Lock()
	if cached, ok := p.cache.Get(key); ok {
		p.mu.Unlock()
		return append([]CustomEntity(nil), cached...), nil
	}
	p.mu.Unlock()

	scopeSet := make(map[string]struct{}, len(scope))
	for _, name := range scope {
		scopeSet[name] = struct{}{}
	}

	matches := p.scan(text, scopeSet)

	p.mu.Lock()
	p.cache.Add(key, matches)
	p.mu.Unlock()
	return append([]CustomEntity(nil), matches...), nil
}

func (p *CustomParser) scan(text string, scope map[string]struct{}) []CustomEntity {
	tokens := tokenize(text)
	var matches []CustomEntity

	i := 0
	for i < len(tokens) {
		advance := 1
		n := p.maxLen
		if remaining := len(tokens) - i; n > remaining {
			n = remaining
		}
		for ; n >= 1; n-- {
			parts := make([]string, 0, n)
			for _, t := range tokens[i : i+n] {
				parts = append(parts, strings.ToLower(t.Text))
			}
			entries, ok := p.dict[strings.Join(parts, " ")]
			if !ok {
				continue
			}
			start, end := tokens[i].Start, tokens[i+n-1].End
			found := false
			for _, e := range entries {
				if _, inScope := scope[e.entity]; !inScope {
					continue
				}
				matches = append(matches, CustomEntity{
					Value:            substring(text, start, end),
					ResolvedValue:    e.resolved,
					Range:            ontology.Range{Start: start, End: end},
					EntityIdentifier: e.entity,
				})
				found = true
			}
			if found {
				advance = n
				break
			}
		}
		i += advance
	}
	return matches
}

func cacheKey(text string, scope []string) string {
	sorted := append([]string(nil), scope...)
	sort.Strings(sorted)
	return text + "\x1f" + strings.Join(sorted, "\x1f")
}
