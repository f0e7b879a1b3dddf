package source_test

import (
	"errors"
	"fmt"
)

// stringsBackend is a minimal random-access backend over a string slice.
type stringsBackend struct {
	items []string
}

func newStringsBackend(items ...string) *stringsBackend {
	return &stringsBackend{items: items}
}

func (b *stringsBackend) Len() int {
	return len(b.items)
}

func (b *stringsBackend) At(position int) (string, error) {
	return b.items[position], nil
}

func (b *stringsBackend) String() string {
	return fmt.Sprintf("strings(n=%d)", len(b.items))
}

// errRead is the backend-originated failure used to verify pass-through.
var errRead = errors.New("backend: read failed")

// failingBackend reports a fixed length but fails every read.
type failingBackend struct{}

func (failingBackend) Len() int {
	return 3
}

func (failingBackend) At(int) (string, error) {
	return "", errRead
}

// opaqueBackend has no String of its own; leaves fall back to its type.
type opaqueBackend struct{}

func (opaqueBackend) Len() int {
	return 1
}

func (opaqueBackend) At(int) (string, error) {
	return "x", nil
}
