package widget

import (
	"fmt"
	"strings"
)

// Shape is the observable outcome of a filtered search.
type Shape int

const (
	// ShapeResultsPresent has at least one list row and one individual marker or pointer.
	ShapeResultsPresent Shape = iota + 1
	// ShapeNoResults shows the fallback text, no individual markers and only cluster glyphs.
	ShapeNoResults
)

func (s Shape) String() string {
	switch s {
	case ShapeResultsPresent:
		return "results present"
	case ShapeNoResults:
		return "no results"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// Snapshot is the rendered result state at one point in time.
type Snapshot struct {
	Rows     int
	Markers  int
	Pointers int
	Clusters int
	ListText string
}

// Detailed returns the number of individual result glyphs on the map.
func (s Snapshot) Detailed() int {
	return s.Markers + s.Pointers
}

func (s Snapshot) String() string {
	return fmt.Sprintf("rows=%d markers=%d pointers=%d clusters=%d list=%q",
		s.Rows, s.Markers, s.Pointers, s.Clusters, s.ListText)
}

// Classify maps a snapshot to exactly one Shape. Snapshots matching neither shape
// (e.g. rows without markers, or an empty list without clusters) return ErrUnclassified.
func Classify(s Snapshot, fallbackText string) (Shape, error) {
	if s.Rows >= 1 && s.Detailed() >= 1 {
		return ShapeResultsPresent, nil
	}
	if s.Rows == 0 &&
		strings.TrimSpace(s.ListText) == strings.TrimSpace(fallbackText) &&
		s.Detailed() == 0 &&
		s.Clusters >= 1 {
		return ShapeNoResults, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnclassified, s)
}
