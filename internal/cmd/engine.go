package cmd

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/parlancehq/parlance/internal/config"
	"github.com/parlancehq/parlance/internal/nlu"
)

// loadEngine resolves the model path (--model flag, then saved config) and
// loads the engine. A ".zip" suffix selects archive loading.
func loadEngine() (*nlu.Engine, error) {
	modelPath := modelFlag
	if modelPath == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		modelPath = cfg.ModelPath
	}
	if modelPath == "" {
		return nil, fmt.Errorf("no model configured: pass --model or run 'parlance config --model <path>'")
	}

	var opts []nlu.Option
	if verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
		opts = append(opts, nlu.WithLogger(logger))
	}

	if strings.HasSuffix(modelPath, ".zip") {
		return nlu.LoadArchiveFile(modelPath, opts...)
	}
	return nlu.Load(modelPath, opts...)
}
