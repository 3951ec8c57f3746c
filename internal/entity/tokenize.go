package entity

import "unicode"

// token is a run of letters/digits, or a single symbol rune. Start and End
// are rune offsets into the original text.
type token struct {
	Text  string
	Start int
	End   int
}

// tokenize splits text into tokens, tracking rune offsets. Whitespace is
// discarded; any other non-alphanumeric rune becomes its own token so that
// symbols like "%" stay visible to the recognizers.
func tokenize(text string) []token {
	var tokens []token
	var cur []rune
	start := 0

	flush := func(end int) {
		if len(cur) > 0 {
			tokens = append(tokens, token{Text: string(cur), Start: start, End: end})
			cur = nil
		}
	}

	pos := 0
	for _, r := range text {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if len(cur) == 0 {
				start = pos
			}
			cur = append(cur, r)
		case unicode.IsSpace(r):
			flush(pos)
		default:
			flush(pos)
			tokens = append(tokens, token{Text: string(r), Start: pos, End: pos + 1})
		}
		pos++
	}
	flush(pos)
	return tokens
}

// substring cuts text by rune range.
func substring(text string, start, end int) string {
	runes := []rune(text)
	if start < 0 {
		start = 0
	}
	if end > len(runes) {
		end = len(runes)
	}
	if start >= end {
		return ""
	}
	return string(runes[start:end])
}
