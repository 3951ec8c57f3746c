// Package registry instantiates intent parser variants from their persisted
// processing units. The set of variants is closed: adding one means adding a
// case here.
package registry

import (
	"fmt"

	"github.com/parlancehq/parlance/internal/entity"
	"github.com/parlancehq/parlance/internal/parser"
	"github.com/parlancehq/parlance/internal/parser/deterministic"
	"github.com/parlancehq/parlance/internal/parser/lookup"
)

// UnknownUnitError is returned when a persisted unit names a parser variant
// this engine does not ship.
type UnknownUnitError struct {
	UnitName string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown processing unit %q", e.UnitName)
}

// Build instantiates the parser variant described by meta from its unit
// directory, injecting the shared resources handle.
func Build(meta parser.ProcessingUnitMetadata, dir string, res *entity.SharedResources) (parser.IntentParser, error) {
	switch meta.UnitName {
	case deterministic.UnitName:
		return deterministic.Load(dir, res)
	case lookup.UnitName:
		return lookup.Load(dir, res)
	default:
		return nil, &UnknownUnitError{UnitName: meta.UnitName}
	}
}
