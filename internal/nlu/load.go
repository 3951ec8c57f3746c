package nlu

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/model"
	"github.com/parlancehq/parlance/internal/ontology"
	"github.com/parlancehq/parlance/internal/parser"
	"github.com/parlancehq/parlance/internal/parser/registry"
)

// Load builds an engine from a model bundle directory. There is no
// partially-usable engine: either every component loads or Load fails.
func Load(dir string, opts ...Option) (*Engine, error) {
	engineModel, err := model.ReadModel(dir)
	if err != nil {
		return nil, err
	}

	lang, err := ontology.LanguageFromCode(engineModel.DatasetMetadata.LanguageCode)
	if err != nil {
		return nil, err
	}

	resources, err := entity.LoadSharedResources(
		lang,
		filepath.Join(dir, "resources", lang.String()),
		filepath.Join(dir, engineModel.BuiltinEntityParser),
		filepath.Join(dir, engineModel.CustomEntityParser),
	)
	if err != nil {
		return nil, err
	}

	// Parser order is the cascade order; preserve it exactly as declared.
	parsers := make([]parser.IntentParser, 0, len(engineModel.IntentParsers))
	for _, parserID := range engineModel.IntentParsers {
		parserDir := filepath.Join(dir, parserID)

		var meta parser.ProcessingUnitMetadata
		if err := model.ReadJSONFile(filepath.Join(parserDir, parser.MetadataFile), &meta); err != nil {
			return nil, fmt.Errorf("read metadata of parser %q: %w", parserID, err)
		}
		p, err := registry.Build(meta, parserDir, resources)
		if err != nil {
			return nil, fmt.Errorf("build parser %q: %w", parserID, err)
		}
		parsers = append(parsers, p)
	}

	e := New(engineModel.DatasetMetadata, parsers, resources, opts...)
	e.log.Debug("model loaded",
		zap.String("dir", dir),
		zap.String("language", lang.String()),
		zap.Int("parsers", len(parsers)))
	return e, nil
}

// LoadArchive builds an engine from a zipped model bundle. The archive is
// extracted into a fresh temporary directory that is removed again on every
// exit path; the engine keeps nothing on disk.
func LoadArchive(r io.ReaderAt, size int64, opts ...Option) (*Engine, error) {
	tmpDir, err := os.MkdirTemp("", "parlance-nlu-")
	if err != nil {
		return nil, fmt.Errorf("create scratch dir: %w", err)
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	root, err := model.ExtractArchive(r, size, tmpDir)
	if err != nil {
		return nil, err
	}
	return Load(root, opts...)
}

// LoadArchiveFile is LoadArchive over a zip file on disk.
func LoadArchiveFile(path string, opts ...Option) (*Engine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model archive: %w", err)
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat model archive: %w", err)
	}
	return LoadArchive(f, info.Size(), opts...)
}
