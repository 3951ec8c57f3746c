package model

import "fmt"

// WrongModelVersionError reports a bundle built for a different engine
// version. It is fatal at load time and never retried.
type WrongModelVersionError struct {
	Found    string
	Expected string
}

func (e *WrongModelVersionError) Error() string {
	return fmt.Sprintf("wrong model version: found %q, expected %q", e.Found, e.Expected)
}

// ModelLoadError wraps any I/O or deserialization failure while reading a
// model file, annotated with the offending path.
type ModelLoadError struct {
	Path string
	Err  error
}

func (e *ModelLoadError) Error() string {
	return fmt.Sprintf("cannot load model file %s: %v", e.Path, e.Err)
}

func (e *ModelLoadError) Unwrap() error { return e.Err }
