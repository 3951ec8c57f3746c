package entity

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
)

// BuiltinParserModel is the persisted configuration of the builtin parser
// (parser.json inside the builtin parser directory of a bundle). An absent
// file enables every recognizer.
type BuiltinParserModel struct {
	EnabledKinds []ontology.BuiltinKind `json:"enabled_kinds,omitempty"`
}

// LoadSharedResources builds the shared extractor handle from a bundle's
// language resources directory and the two persisted parser directories.
// Called once per load; every parser and the engine share the result.
func LoadSharedResources(lang ontology.Language, resourcesDir, builtinDir, customDir string) (*SharedResources, error) {
	stopWords, err := loadStopWords(filepath.Join(resourcesDir, "stop_words.txt"))
	if err != nil {
		return nil, err
	}

	var builtinModel BuiltinParserModel
	builtinConfig := filepath.Join(builtinDir, "parser.json")
	if _, err := os.Stat(builtinConfig); err == nil {
		if err := model.ReadJSONFile(builtinConfig, &builtinModel); err != nil {
			return nil, err
		}
	}

	var customModel CustomParserModel
	if err := model.ReadJSONFile(filepath.Join(customDir, "parser.json"), &customModel); err != nil {
		return nil, err
	}
	custom, err := NewCustomParser(&customModel)
	if err != nil {
		return nil, err
	}

	return &SharedResources{
		Builtin:   NewBuiltinParser(lang, builtinModel.EnabledKinds),
		Custom:    custom,
		StopWords: stopWords,
	}, nil
}

// loadStopWords reads one stop word per line. The file is optional.
func loadStopWords(path string) (map[string]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]struct{}{}, nil
		}
		return nil, &model.ModelLoadError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	words := make(map[string]struct{})
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word != "" {
			words[word] = struct{}{}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &model.ModelLoadError{Path: path, Err: err}
	}
	return words, nil
}
