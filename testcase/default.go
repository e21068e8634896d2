package testcase

import (
	"bytes"
	_ "embed"
	"fmt"
)

// DefaultFile names the built-in location cases.
const DefaultFile = "testdata/gps-coordinates.json"

//go:embed testdata/gps-coordinates.json
var defaultCases []byte

// Default returns the built-in location cases: Czech city centres with Z-Boxes nearby and
// remote places without any.
func Default() ([]TestCase, error) {
	cases, err := Parse(bytes.NewReader(defaultCases), FormatJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in %s: %w", DefaultFile, err)
	}
	return cases, nil
}

// LoadOrDefault loads path, or returns the built-in cases when path is empty.
func LoadOrDefault(path string) ([]TestCase, error) {
	if path == "" {
		return Default()
	}
	return Load(path)
}
