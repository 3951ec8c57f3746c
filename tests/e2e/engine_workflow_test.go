package e2e_test

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parlancehq/parlance/internal/nlu"
	"github.com/parlancehq/parlance/internal/ontology"
)

const bundleDir = "../../internal/nlu/testdata/nlu_engine"

// TestE2E_ParseWorkflow tests the complete inference workflow:
// 1. Load a trained model bundle from a directory
// 2. Parse an utterance into an intent and typed slots
// 3. Serialize the result for API consumers
func TestE2E_ParseWorkflow(t *testing.T) {
	engine, err := nlu.Load(bundleDir)
	require.NoError(t, err)

	result, err := engine.Parse("Make me two cups of coffee please", nil)
	require.NoError(t, err)

	require.NotNil(t, result.Intent)
	assert.Equal(t, "MakeCoffee", result.Intent.IntentName)
	assert.InDelta(t, 1.0, result.Intent.Probability, 1e-9)

	require.Len(t, result.Slots, 1)
	slot := result.Slots[0]
	assert.Equal(t, "two", slot.RawValue)
	assert.Equal(t, "number_of_cups", slot.SlotName)
	assert.Equal(t, "snips/number", slot.Entity)
	assert.Equal(t, ontology.NumberValue(2), slot.Value)
	require.NotNil(t, slot.Range)
	assert.Equal(t, ontology.Range{Start: 8, End: 11}, *slot.Range)

	// The wire format keeps null intent/slots distinguishable from empty,
	// so clients can tell "no match" apart from "matched without slots".
	data, err := json.Marshal(result)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"intentName":"MakeCoffee"`)

	noMatch, err := engine.Parse("open the pod bay doors", nil)
	require.NoError(t, err)
	data, err = json.Marshal(noMatch)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"intent":null`)
	assert.Contains(t, string(data), `"slots":null`)
}

// TestE2E_ArchiveWorkflow packs the bundle into a zip, loads it through the
// archive path and checks the engine behaves identically.
func TestE2E_ArchiveWorkflow(t *testing.T) {
	archivePath := filepath.Join(t.TempDir(), "model.zip")
	require.NoError(t, os.WriteFile(archivePath, zipBundle(t), 0o644))

	engine, err := nlu.LoadArchiveFile(archivePath)
	require.NoError(t, err)

	result, err := engine.Parse("Make me two cups of coffee please", nil)
	require.NoError(t, err)
	require.NotNil(t, result.Intent)
	assert.Equal(t, "MakeCoffee", result.Intent.IntentName)
	require.Len(t, result.Slots, 1)
	assert.Equal(t, ontology.NumberValue(2), result.Slots[0].Value)
}

// TestE2E_SlotExtraction exercises the direct slot path against both entity
// families.
func TestE2E_SlotExtraction(t *testing.T) {
	engine, err := nlu.Load(bundleDir)
	require.NoError(t, err)

	// Builtin entity: typed value, no slot-level range.
	slot, err := engine.ExtractSlot("9 cups of coffee", "MakeCoffee", "number_of_cups")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "9", slot.RawValue)
	assert.Equal(t, ontology.NumberValue(9), slot.Value)
	assert.Nil(t, slot.Range)

	// Custom entity: gazetteer hit resolves to the canonical value.
	slot, err = engine.ExtractSlot("an iced tea please", "MakeTea", "beverage_temperature")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "iced", slot.RawValue)
	assert.Equal(t, ontology.CustomValue("cold"), slot.Value)

	// Automatically extensible entity: no gazetteer hit still resolves,
	// taking the whole input.
	slot, err = engine.ExtractSlot("lukewarm", "MakeTea", "beverage_temperature")
	require.NoError(t, err)
	require.NotNil(t, slot)
	assert.Equal(t, "lukewarm", slot.RawValue)
	assert.Equal(t, ontology.CustomValue("lukewarm"), slot.Value)

	// Unknown names are hard errors, not empty results.
	_, err = engine.ExtractSlot("whatever", "MakeCoffee", "bogus_slot")
	assert.ErrorContains(t, err, "unknown slot")
	_, err = engine.ExtractSlot("whatever", "BogusIntent", "number_of_cups")
	assert.ErrorContains(t, err, "unknown intent")
}

// TestE2E_IntentFilter restricts classification to a subset of intents.
func TestE2E_IntentFilter(t *testing.T) {
	engine, err := nlu.Load(bundleDir)
	require.NoError(t, err)

	result, err := engine.Parse("Make me two cups of coffee please", []string{"MakeTea"})
	require.NoError(t, err)
	assert.Nil(t, result.Intent)

	result, err = engine.Parse("Make me two cups of coffee please", []string{"MakeCoffee", "MakeTea"})
	require.NoError(t, err)
	require.NotNil(t, result.Intent)
	assert.Equal(t, "MakeCoffee", result.Intent.IntentName)
}

func zipBundle(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	err := filepath.WalkDir(bundleDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(bundleDir, path)
		if err != nil {
			return err
		}
		f, err := w.Create(filepath.Join("nlu_engine", rel))
		if err != nil {
			return err
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		_, err = f.Write(data)
		return err
	})
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return buf.Bytes()
}
