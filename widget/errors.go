package widget

import "errors"

var (
	// ErrMapNotReady is wrapped by every StageError.
	ErrMapNotReady = errors.New("map not ready")
	// ErrSectionCollapsed is returned when an option is selected before its filter section was expanded.
	ErrSectionCollapsed = errors.New("filter section not expanded")
	// ErrPanelSubmitted is returned when a filter panel is used after Submit.
	ErrPanelSubmitted = errors.New("filter panel already submitted")
	// ErrUnclassified is returned when a snapshot matches neither result shape.
	ErrUnclassified = errors.New("results match neither shape")
)
