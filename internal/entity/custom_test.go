package entity

import (
	"testing"

	"github.com/parlancehq/parlance/internal/ontology"
)

func testGazetteer(t *testing.T) *CustomParser {
	t.Helper()
	p, err := NewCustomParser(&CustomParserModel{
		Entities: map[string]GazetteerEntity{
			"Temperature": {Values: []GazetteerValue{
				{Value: "hot", ResolvedValue: "hot"},
				{Value: "boiling", ResolvedValue: "hot", Synonyms: []string{"boiling hot"}},
				{Value: "iced", ResolvedValue: "cold"},
			}},
			"Beverage": {Values: []GazetteerValue{
				{Value: "tea"},
				{Value: "green tea"},
			}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestCustomParserExtract(t *testing.T) {
	p := testGazetteer(t)

	matches, err := p.Extract("a Boiling cup", []string{"Temperature"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	m := matches[0]
	if m.Value != "Boiling" || m.ResolvedValue != "hot" || m.EntityIdentifier != "Temperature" {
		t.Errorf("unexpected match: %+v", m)
	}
	if m.Range != (ontology.Range{Start: 2, End: 9}) {
		t.Errorf("Range = %+v, want [2, 9)", m.Range)
	}
}

func TestCustomParserLongestMatchWins(t *testing.T) {
	p := testGazetteer(t)

	matches, err := p.Extract("some green tea please", []string{"Beverage"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].Value != "green tea" {
		t.Errorf("longest phrase should win, got %q", matches[0].Value)
	}
}

func TestCustomParserSynonymResolution(t *testing.T) {
	p := testGazetteer(t)

	matches, err := p.Extract("boiling hot water", []string{"Temperature"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1: %v", len(matches), matches)
	}
	if matches[0].Value != "boiling hot" || matches[0].ResolvedValue != "hot" {
		t.Errorf("synonym should resolve to canonical value: %+v", matches[0])
	}
}

func TestCustomParserScopeFilter(t *testing.T) {
	p := testGazetteer(t)

	matches, err := p.Extract("iced green tea", []string{"Beverage"})
	if err != nil {
		t.Fatal(err)
	}
	for _, m := range matches {
		if m.EntityIdentifier != "Beverage" {
			t.Errorf("out-of-scope match: %+v", m)
		}
	}

	matches, err = p.Extract("iced green tea", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 0 {
		t.Errorf("empty scope should extract nothing, got %v", matches)
	}
}

func TestCustomParserCacheReturnsCopies(t *testing.T) {
	p := testGazetteer(t)

	first, err := p.Extract("hot tea", []string{"Temperature"})
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("got %d matches, want 1", len(first))
	}
	first[0].ResolvedValue = "mutated"

	second, err := p.Extract("hot tea", []string{"Temperature"})
	if err != nil {
		t.Fatal(err)
	}
	if second[0].ResolvedValue != "hot" {
		t.Error("cached result leaked a caller mutation")
	}
}

func TestCustomParserMultipleMatches(t *testing.T) {
	p := testGazetteer(t)

	matches, err := p.Extract("hot tea or iced tea", []string{"Temperature"})
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
	if matches[0].Value != "hot" || matches[1].Value != "iced" {
		t.Errorf("matches should be reported left to right: %v", matches)
	}
}
