package testcase_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/pickupcheck/geo"
	"github.com/networkteam/pickupcheck/testcase"
)

const jsonCases = `[
  {"testName": "Prague", "latitude": 50.0755, "longitude": 14.4378, "expectedResultNearby": true},
  {"name": "Atlantic Ocean", "latitude": 45.0, "longitude": -30.0, "expectedResultNearby": false}
]`

func TestParse_JSON(t *testing.T) {
	cases, err := testcase.Parse(strings.NewReader(jsonCases), testcase.FormatJSON)
	require.NoError(t, err)

	require.Len(t, cases, 2)
	assert.Equal(t, testcase.TestCase{
		Name:                 "Prague",
		Latitude:             50.0755,
		Longitude:            14.4378,
		ExpectedResultNearby: true,
	}, cases[0])
	assert.Equal(t, "Atlantic Ocean", cases[1].Name, "name is accepted as alias of testName")
	assert.Equal(t, geo.Point{Latitude: 45, Longitude: -30}, cases[1].Point())
}

func TestParse_YAML(t *testing.T) {
	const yamlCases = `
- testName: Brno
  latitude: 49.1951
  longitude: 16.6068
  expectedResultNearby: true
- testName: Reykjavik
  latitude: 64.1466
  longitude: -21.9426
`
	cases, err := testcase.Parse(strings.NewReader(yamlCases), testcase.FormatYAML)
	require.NoError(t, err)

	require.Len(t, cases, 2)
	assert.True(t, cases[0].ExpectedResultNearby)
	assert.False(t, cases[1].ExpectedResultNearby)
	assert.InDelta(t, -21.9426, cases[1].Longitude, 1e-9)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "latitude out of range", input: `[{"testName": "x", "latitude": 91, "longitude": 0}]`},
		{name: "longitude out of range", input: `[{"testName": "x", "latitude": 0, "longitude": 181}]`},
		{name: "missing longitude", input: `[{"testName": "x", "latitude": 0}]`},
		{name: "missing name", input: `[{"latitude": 0, "longitude": 0}]`},
		{name: "duplicate names", input: `[{"testName": "x", "latitude": 0, "longitude": 0}, {"testName": "x", "latitude": 1, "longitude": 1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testcase.Parse(strings.NewReader(tt.input), testcase.FormatJSON)
			assert.ErrorIs(t, err, testcase.ErrInvalid)
		})
	}
}

func TestParse_UnknownField(t *testing.T) {
	_, err := testcase.Parse(strings.NewReader(`[{"testName": "x", "latitude": 0, "longitude": 0, "radius": 5}]`), testcase.FormatJSON)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "gps-coordinates.json")
	require.NoError(t, os.WriteFile(path, []byte(jsonCases), 0o644))

	cases, err := testcase.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Prague", "Atlantic Ocean"}, testcase.Names(cases))

	_, err = testcase.Load(filepath.Join(dir, "cases.csv"))
	assert.ErrorContains(t, err, "unsupported test case file")

	_, err = testcase.Load(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSelect(t *testing.T) {
	cases := []testcase.TestCase{
		{Name: "Prague", ExpectedResultNearby: true},
		{Name: "Brno", ExpectedResultNearby: true},
		{Name: "Atlantic Ocean"},
	}

	all, err := testcase.Select(cases)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	selected, err := testcase.Select(cases, "Atlantic Ocean", "Prague")
	require.NoError(t, err)
	assert.Equal(t, []string{"Prague", "Atlantic Ocean"}, testcase.Names(selected), "file order is kept")

	_, err = testcase.Select(cases, "Vienna")
	assert.ErrorContains(t, err, "Vienna")
}

func TestSplitByExpectation(t *testing.T) {
	cases := []testcase.TestCase{
		{Name: "Prague", ExpectedResultNearby: true},
		{Name: "Atlantic Ocean"},
		{Name: "Brno", ExpectedResultNearby: true},
	}

	nearby, remote := testcase.SplitByExpectation(cases)
	assert.Equal(t, []string{"Prague", "Brno"}, testcase.Names(nearby))
	assert.Equal(t, []string{"Atlantic Ocean"}, testcase.Names(remote))
}

func TestDefault(t *testing.T) {
	cases, err := testcase.Default()
	require.NoError(t, err)

	nearby, remote := testcase.SplitByExpectation(cases)
	assert.Equal(t, []string{"Prague", "Brno", "Ostrava"}, testcase.Names(nearby))
	assert.Equal(t, []string{"Atlantic Ocean", "Reykjavik"}, testcase.Names(remote))
}

func TestLoadOrDefault(t *testing.T) {
	// The built-in cases must not depend on the working directory
	chdir(t, t.TempDir())

	cases, err := testcase.LoadOrDefault("")
	require.NoError(t, err)
	assert.Len(t, cases, 5)

	_, err = testcase.LoadOrDefault(testcase.DefaultFile)
	assert.ErrorIs(t, err, os.ErrNotExist, "an explicit path is read from disk")
}

func chdir(t *testing.T, dir string) {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
