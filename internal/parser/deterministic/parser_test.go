package deterministic

import (
	"testing"

	"github.com/parlancehq/parlance/internal/ontology"
)

func testConfig() *Config {
	return &Config{
		LanguageCode: "en",
		Patterns: map[string][]string{
			"MakeCoffee": {
				`(?i)^\s*make me (?P<group0>\S+) cups? of coffee\s*(?:please)?\s*$`,
			},
			"MakeTea": {
				`(?i)^\s*make me (?:a )?(?P<group1>\w+) tea\s*$`,
			},
		},
		GroupNamesToSlotNames: map[string]string{
			"group0": "number_of_cups",
			"group1": "beverage_temperature",
		},
		SlotNamesToEntities: map[string]map[string]string{
			"MakeCoffee": {"number_of_cups": "snips/number"},
			"MakeTea":    {"beverage_temperature": "Temperature"},
		},
	}
}

func TestParseMatch(t *testing.T) {
	p, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Parse("Make me two cups of coffee please", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("expected a match")
	}
	if result.Intent.IntentName != "MakeCoffee" || result.Intent.Probability != 1.0 {
		t.Errorf("unexpected intent: %+v", result.Intent)
	}
	if len(result.Slots) != 1 {
		t.Fatalf("got %d slots, want 1", len(result.Slots))
	}
	slot := result.Slots[0]
	if slot.Value != "two" || slot.SlotName != "number_of_cups" || slot.Entity != "snips/number" {
		t.Errorf("unexpected slot: %+v", slot)
	}
	if slot.Range != (ontology.Range{Start: 8, End: 11}) {
		t.Errorf("Range = %+v, want [8, 11)", slot.Range)
	}
}

func TestParseNoMatch(t *testing.T) {
	p, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Parse("turn on the lights", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("expected decline, got %+v", result)
	}
}

func TestParseIntentFilter(t *testing.T) {
	p, err := New(testConfig(), nil)
	if err != nil {
		t.Fatal(err)
	}

	filter := map[string]struct{}{"MakeTea": {}}
	result, err := p.Parse("Make me two cups of coffee please", filter)
	if err != nil {
		t.Fatal(err)
	}
	if result != nil {
		t.Errorf("filtered-out intent should not match, got %+v", result)
	}

	result, err = p.Parse("make me a hot tea", filter)
	if err != nil {
		t.Fatal(err)
	}
	if result == nil || result.Intent.IntentName != "MakeTea" {
		t.Fatalf("expected MakeTea, got %+v", result)
	}
	if len(result.Slots) != 1 || result.Slots[0].Value != "hot" {
		t.Errorf("unexpected slots: %+v", result.Slots)
	}
}

func TestParseRuneRanges(t *testing.T) {
	cfg := &Config{
		LanguageCode:          "en",
		Patterns:              map[string][]string{"Order": {`^café (?P<g>\w+)$`}},
		GroupNamesToSlotNames: map[string]string{"g": "item"},
		SlotNamesToEntities:   map[string]map[string]string{"Order": {"item": "Item"}},
	}
	p, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	result, err := p.Parse("café latte", nil)
	if err != nil {
		t.Fatal(err)
	}
	if result == nil {
		t.Fatal("expected a match")
	}
	// "é" is two bytes but one character; the range must count characters.
	if result.Slots[0].Range != (ontology.Range{Start: 5, End: 10}) {
		t.Errorf("Range = %+v, want [5, 10)", result.Slots[0].Range)
	}
}

func TestNewRejectsBadPattern(t *testing.T) {
	cfg := testConfig()
	cfg.Patterns["MakeCoffee"] = []string{"(?P<group0>[unclosed"}
	if _, err := New(cfg, nil); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestParseUnmappedGroup(t *testing.T) {
	cfg := testConfig()
	cfg.GroupNamesToSlotNames = map[string]string{"group1": "beverage_temperature"}
	p, err := New(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := p.Parse("make me two cups of coffee", nil); err == nil {
		t.Fatal("expected error for pattern group without slot mapping")
	}
}
