package testcase

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"github.com/networkteam/pickupcheck/geo"
)

// ErrInvalid is returned for test case files with missing or malformed entries.
var ErrInvalid = errors.New("invalid test case")

// TestCase is one simulated location and whether Z-Boxes are expected nearby.
type TestCase struct {
	Name                 string
	Latitude             float64
	Longitude            float64
	ExpectedResultNearby bool
}

// Point returns the simulated location.
func (tc TestCase) Point() geo.Point {
	return geo.Point{Latitude: tc.Latitude, Longitude: tc.Longitude}
}

// record is the on-disk form. Older fixture files use "name" instead of "testName".
type record struct {
	TestName             string   `json:"testName" yaml:"testName"`
	Name                 string   `json:"name" yaml:"name"`
	Latitude             *float64 `json:"latitude" yaml:"latitude"`
	Longitude            *float64 `json:"longitude" yaml:"longitude"`
	ExpectedResultNearby bool     `json:"expectedResultNearby" yaml:"expectedResultNearby"`
}

// Format of a test case file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath derives the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported test case file %q: expected .json, .yaml or .yml", path)
	}
}

// Load reads and validates test cases from a JSON or YAML file.
func Load(path string) ([]TestCase, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading test cases: %w", err)
	}

	cases, err := Parse(bytes.NewReader(data), format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cases, nil
}

// Parse decodes and validates a list of test cases.
func Parse(r io.Reader, format Format) ([]TestCase, error) {
	var records []record

	switch format {
	case FormatJSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&records); err != nil {
			return nil, fmt.Errorf("decoding JSON: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&records); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}

	cases := make([]TestCase, 0, len(records))
	for i, rec := range records {
		tc, err := rec.toTestCase()
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		cases = append(cases, tc)
	}

	if err := Validate(cases); err != nil {
		return nil, err
	}
	return cases, nil
}

func (r record) toTestCase() (TestCase, error) {
	name := r.TestName
	if name == "" {
		name = r.Name
	}
	if r.Latitude == nil || r.Longitude == nil {
		return TestCase{}, fmt.Errorf("%w: %q is missing latitude or longitude", ErrInvalid, name)
	}

	return TestCase{
		Name:                 name,
		Latitude:             *r.Latitude,
		Longitude:            *r.Longitude,
		ExpectedResultNearby: r.ExpectedResultNearby,
	}, nil
}

// Validate checks names are set and unique and coordinates are in range.
func Validate(cases []TestCase) error {
	var errs []error

	for i, tc := range cases {
		if strings.TrimSpace(tc.Name) == "" {
			errs = append(errs, fmt.Errorf("%w: entry %d has no name", ErrInvalid, i))
		}
		if err := tc.Point().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("%w: %q: %w", ErrInvalid, tc.Name, err))
		}
	}

	duplicates := lo.FindDuplicatesBy(cases, func(tc TestCase) string { return tc.Name })
	for _, tc := range duplicates {
		errs = append(errs, fmt.Errorf("%w: duplicate name %q", ErrInvalid, tc.Name))
	}

	return errors.Join(errs...)
}

// Select returns the cases with the given names in file order. No names selects all cases.
// Unknown names are an error.
func Select(cases []TestCase, names ...string) ([]TestCase, error) {
	if len(names) == 0 {
		return cases, nil
	}

	known := Names(cases)
	if unknown := lo.Without(names, known...); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown test cases: %s", strings.Join(unknown, ", "))
	}

	return lo.Filter(cases, func(tc TestCase, _ int) bool {
		return lo.Contains(names, tc.Name)
	}), nil
}

// Names returns the names of cases.
func Names(cases []TestCase) []string {
	return lo.Map(cases, func(tc TestCase, _ int) string { return tc.Name })
}

// SplitByExpectation separates cases expecting nearby results from the ones expecting none.
func SplitByExpectation(cases []TestCase) (nearby, remote []TestCase) {
	return lo.FilterReject(cases, func(tc TestCase, _ int) bool {
		return tc.ExpectedResultNearby
	})
}
