package ontology

import "fmt"

// Language is the enumerated language identifier of a trained dataset.
type Language string

const (
	LangDE Language = "de"
	LangEN Language = "en"
	LangES Language = "es"
	LangFR Language = "fr"
	LangIT Language = "it"
	LangJA Language = "ja"
	LangKO Language = "ko"
	LangPT Language = "pt"
)

var supportedLanguages = map[Language]struct{}{
	LangDE: {}, LangEN: {}, LangES: {}, LangFR: {},
	LangIT: {}, LangJA: {}, LangKO: {}, LangPT: {},
}

// LanguageFromCode validates a language code from dataset metadata.
func LanguageFromCode(code string) (Language, error) {
	lang := Language(code)
	if _, ok := supportedLanguages[lang]; !ok {
		return "", fmt.Errorf("unsupported language code %q", code)
	}
	return lang, nil
}

func (l Language) String() string { return string(l) }
