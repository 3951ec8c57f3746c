package entity

import (
	"sort"
	"strconv"
	"strings"

	"github.com/parlancehq/parlance/internal/ontology"
)

// BuiltinParser recognizes the builtin typed entities. It is rule and
// gazetteer based: a tokenizer pass followed by per-kind scanners over the
// token stream. Immutable after construction.
type BuiltinParser struct {
	lang    ontology.Language
	enabled map[ontology.BuiltinKind]struct{}
}

// NewBuiltinParser builds a parser for lang. kinds restricts which
// recognizers are available; nil enables all of them.
func NewBuiltinParser(lang ontology.Language, kinds []ontology.BuiltinKind) *BuiltinParser {
	if kinds == nil {
		kinds = ontology.AllBuiltinKinds
	}
	enabled := make(map[ontology.BuiltinKind]struct{}, len(kinds))
	for _, k := range kinds {
		enabled[k] = struct{}{}
	}
	return &BuiltinParser{lang: lang, enabled: enabled}
}

// Extract runs the recognizers named by scope over text. Matches are
// returned ordered by start offset, then end offset.
func (p *BuiltinParser) Extract(text string, scope []ontology.BuiltinKind) ([]BuiltinEntity, error) {
	if len(scope) == 0 {
		return nil, nil
	}
	tokens := tokenize(text)

	var matches []BuiltinEntity
	for _, kind := range scope {
		if _, ok := p.enabled[kind]; !ok {
			continue
		}
		switch kind {
		case ontology.BuiltinNumber:
			matches = append(matches, extractNumbers(text, tokens)...)
		case ontology.BuiltinOrdinal:
			matches = append(matches, extractOrdinals(text, tokens)...)
		case ontology.BuiltinDuration:
			matches = append(matches, extractDurations(text, tokens)...)
		case ontology.BuiltinTemperature:
			matches = append(matches, extractTemperatures(text, tokens)...)
		case ontology.BuiltinPercentage:
			matches = append(matches, extractPercentages(text, tokens)...)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Range.Start != matches[j].Range.Start {
			return matches[i].Range.Start < matches[j].Range.Start
		}
		return matches[i].Range.End < matches[j].Range.End
	})
	return matches, nil
}

var unitNumbers = map[string]float64{
	"zero": 0, "one": 1, "two": 2, "three": 3, "four": 4,
	"five": 5, "six": 6, "seven": 7, "eight": 8, "nine": 9,
	"ten": 10, "eleven": 11, "twelve": 12, "thirteen": 13, "fourteen": 14,
	"fifteen": 15, "sixteen": 16, "seventeen": 17, "eighteen": 18, "nineteen": 19,
}

var tensNumbers = map[string]float64{
	"twenty": 20, "thirty": 30, "forty": 40, "fifty": 50,
	"sixty": 60, "seventy": 70, "eighty": 80, "ninety": 90,
}

var ordinalWords = map[string]int{
	"first": 1, "second": 2, "third": 3, "fourth": 4, "fifth": 5,
	"sixth": 6, "seventh": 7, "eighth": 8, "ninth": 9, "tenth": 10,
	"eleventh": 11, "twelfth": 12, "thirteenth": 13, "fourteenth": 14,
	"fifteenth": 15, "sixteenth": 16, "seventeenth": 17, "eighteenth": 18,
	"nineteenth": 19, "twentieth": 20,
}

var durationUnits = map[string]string{
	"second": "second", "seconds": "second",
	"minute": "minute", "minutes": "minute",
	"hour": "hour", "hours": "hour",
	"day": "day", "days": "day",
	"week": "week", "weeks": "week",
	"month": "month", "months": "month",
	"year": "year", "years": "year",
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// parseNumberAt tries to read a number starting at token i. It returns the
// value and the number of tokens consumed.
func parseNumberAt(tokens []token, i int) (value float64, consumed int, ok bool) {
	t := strings.ToLower(tokens[i].Text)

	// Digit literal, optionally "N . M" split by the tokenizer.
	if isDigits(t) {
		value, _ = strconv.ParseFloat(t, 64)
		consumed = 1
		if i+2 < len(tokens) && tokens[i+1].Text == "." && isDigits(tokens[i+2].Text) &&
			tokens[i+1].Start == tokens[i].End && tokens[i+2].Start == tokens[i+1].End {
			frac, _ := strconv.ParseFloat(t+"."+tokens[i+2].Text, 64)
			value = frac
			consumed = 3
		}
		return value, consumed, true
	}

	if v, found := unitNumbers[t]; found {
		return v, 1, true
	}

	if tens, found := tensNumbers[t]; found {
		// "twenty five" or "twenty-five"
		j := i + 1
		if j < len(tokens) && tokens[j].Text == "-" {
			j++
		}
		if j < len(tokens) {
			if unit, found := unitNumbers[strings.ToLower(tokens[j].Text)]; found && unit >= 1 && unit <= 9 {
				return tens + unit, j - i + 1, true
			}
		}
		return tens, 1, true
	}

	return 0, 0, false
}

func builtinMatch(text string, tokens []token, first, count int, kind ontology.BuiltinKind, v ontology.SlotValue) BuiltinEntity {
	start := tokens[first].Start
	end := tokens[first+count-1].End
	return BuiltinEntity{
		Value:  substring(text, start, end),
		Range:  ontology.Range{Start: start, End: end},
		Entity: v,
		Kind:   kind,
	}
}

func extractNumbers(text string, tokens []token) []BuiltinEntity {
	var out []BuiltinEntity
	for i := 0; i < len(tokens); {
		if v, consumed, ok := parseNumberAt(tokens, i); ok {
			out = append(out, builtinMatch(text, tokens, i, consumed, ontology.BuiltinNumber, ontology.NumberValue(v)))
			i += consumed
			continue
		}
		i++
	}
	return out
}

func extractOrdinals(text string, tokens []token) []BuiltinEntity {
	var out []BuiltinEntity
	for i, t := range tokens {
		lower := strings.ToLower(t.Text)
		if n, found := ordinalWords[lower]; found {
			out = append(out, builtinMatch(text, tokens, i, 1, ontology.BuiltinOrdinal, ontology.OrdinalValue(n)))
			continue
		}
		// "1st", "2nd", "23rd", "11th"
		for _, suffix := range []string{"st", "nd", "rd", "th"} {
			digits, found := strings.CutSuffix(lower, suffix)
			if !found || !isDigits(digits) {
				continue
			}
			n, err := strconv.Atoi(digits)
			if err == nil {
				out = append(out, builtinMatch(text, tokens, i, 1, ontology.BuiltinOrdinal, ontology.OrdinalValue(n)))
			}
			break
		}
	}
	return out
}

func extractDurations(text string, tokens []token) []BuiltinEntity {
	var out []BuiltinEntity
	for i := 0; i < len(tokens); {
		v, consumed, ok := parseNumberAt(tokens, i)
		if !ok {
			i++
			continue
		}
		next := i + consumed
		if next < len(tokens) {
			if unit, found := durationUnits[strings.ToLower(tokens[next].Text)]; found {
				value := ontology.SlotValue{
					Kind:  ontology.KindDuration,
					Value: ontology.DurationValue{Value: v, Unit: unit},
				}
				out = append(out, builtinMatch(text, tokens, i, consumed+1, ontology.BuiltinDuration, value))
				i = next + 1
				continue
			}
		}
		i += consumed
	}
	return out
}

func extractTemperatures(text string, tokens []token) []BuiltinEntity {
	var out []BuiltinEntity
	for i := 0; i < len(tokens); {
		v, consumed, ok := parseNumberAt(tokens, i)
		if !ok {
			i++
			continue
		}
		next := i + consumed
		count, unit := matchTemperatureUnit(tokens, next)
		if count > 0 {
			value := ontology.SlotValue{
				Kind:  ontology.KindTemperature,
				Value: ontology.TemperatureValue{Value: v, Unit: unit},
			}
			out = append(out, builtinMatch(text, tokens, i, consumed+count, ontology.BuiltinTemperature, value))
			i = next + count
			continue
		}
		i += consumed
	}
	return out
}

// matchTemperatureUnit matches "degrees [celsius|fahrenheit]" or "° C" style
// unit tokens starting at i, returning how many tokens it consumed.
func matchTemperatureUnit(tokens []token, i int) (consumed int, unit string) {
	if i >= len(tokens) {
		return 0, ""
	}
	switch strings.ToLower(tokens[i].Text) {
	case "degree", "degrees":
		if i+1 < len(tokens) {
			switch strings.ToLower(tokens[i+1].Text) {
			case "celsius":
				return 2, "celsius"
			case "fahrenheit":
				return 2, "fahrenheit"
			}
		}
		return 1, "degree"
	case "°":
		if i+1 < len(tokens) {
			switch strings.ToLower(tokens[i+1].Text) {
			case "c":
				return 2, "celsius"
			case "f":
				return 2, "fahrenheit"
			}
		}
		return 1, "degree"
	}
	return 0, ""
}

func extractPercentages(text string, tokens []token) []BuiltinEntity {
	var out []BuiltinEntity
	for i := 0; i < len(tokens); {
		v, consumed, ok := parseNumberAt(tokens, i)
		if !ok {
			i++
			continue
		}
		next := i + consumed
		if next < len(tokens) {
			switch strings.ToLower(tokens[next].Text) {
			case "%", "percent":
				out = append(out, builtinMatch(text, tokens, i, consumed+1, ontology.BuiltinPercentage, ontology.PercentageValue(v)))
				i = next + 1
				continue
			}
		}
		i += consumed
	}
	return out
}
