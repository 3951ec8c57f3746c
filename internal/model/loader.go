package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ReadModel reads and validates the nlu_engine.json descriptor of a bundle
// directory. The declared model_version must equal Version exactly; any
// mismatch aborts the load with WrongModelVersionError, no matter how
// well-formed the rest of the file is.
func ReadModel(dir string) (*EngineModel, error) {
	path := filepath.Join(dir, DescriptorFile)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	// Version is checked before full validation so that an old bundle is
	// reported as a version mismatch rather than a schema failure.
	var versionProbe struct {
		ModelVersion string `json:"model_version"`
	}
	if err := json.Unmarshal(data, &versionProbe); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	if versionProbe.ModelVersion != Version {
		return nil, &WrongModelVersionError{Found: versionProbe.ModelVersion, Expected: Version}
	}

	if err := validateDescriptor(data); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}

	var engineModel EngineModel
	if err := json.Unmarshal(data, &engineModel); err != nil {
		return nil, &ModelLoadError{Path: path, Err: err}
	}
	return &engineModel, nil
}

// ReadJSONFile decodes a JSON file into v, annotating failures with the path.
func ReadJSONFile(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return &ModelLoadError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &ModelLoadError{Path: path, Err: fmt.Errorf("invalid JSON: %w", err)}
	}
	return nil
}
