package ontology

import "fmt"

// BuiltinKind identifies one of the system-provided typed entity
// recognizers. The identifier strings are the ones stored in dataset
// metadata slot mappings (e.g. "snips/number").
type BuiltinKind string

const (
	BuiltinNumber      BuiltinKind = "snips/number"
	BuiltinOrdinal     BuiltinKind = "snips/ordinal"
	BuiltinDuration    BuiltinKind = "snips/duration"
	BuiltinTemperature BuiltinKind = "snips/temperature"
	BuiltinPercentage  BuiltinKind = "snips/percentage"
)

// AllBuiltinKinds lists every supported builtin kind.
var AllBuiltinKinds = []BuiltinKind{
	BuiltinNumber,
	BuiltinOrdinal,
	BuiltinDuration,
	BuiltinTemperature,
	BuiltinPercentage,
}

var builtinKindSet = func() map[BuiltinKind]struct{} {
	set := make(map[BuiltinKind]struct{}, len(AllBuiltinKinds))
	for _, k := range AllBuiltinKinds {
		set[k] = struct{}{}
	}
	return set
}()

// KindFromIdentifier resolves an entity identifier string to a builtin kind.
// Identifiers that do not name a builtin kind (custom entity names) are an
// error; callers that only want to probe should use IsBuiltinIdentifier.
func KindFromIdentifier(identifier string) (BuiltinKind, error) {
	kind := BuiltinKind(identifier)
	if _, ok := builtinKindSet[kind]; !ok {
		return "", fmt.Errorf("unknown builtin entity identifier %q", identifier)
	}
	return kind, nil
}

// IsBuiltinIdentifier reports whether identifier names a builtin kind.
func IsBuiltinIdentifier(identifier string) bool {
	_, ok := builtinKindSet[BuiltinKind(identifier)]
	return ok
}
