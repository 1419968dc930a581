package domain

import "sort"

// HeatmapIntensity is the fixed cell weight for a completed day. Completion
// is binary, so every filled cell carries the same intensity.
const HeatmapIntensity = 1

// HeatmapCell is one day's completion status for rendering.
type HeatmapCell struct {
	Date      string `json:"date"`
	Intensity int    `json:"intensity"`
}

// IsCompletedOn reports whether day is in the completion set.
func IsCompletedOn(dates []string, day string) bool {
	for _, d := range dates {
		if d == day {
			return true
		}
	}
	return false
}

// ToggleDate returns the completion set with day removed if present, or
// appended if absent. It never mutates its input; the caller persists the
// result and must treat the persisted set as authoritative.
func ToggleDate(dates []string, day string) []string {
	out := make([]string, 0, len(dates)+1)
	found := false
	for _, d := range dates {
		if d == day {
			found = true
			continue
		}
		out = append(out, d)
	}
	if !found {
		out = append(out, day)
	}
	return out
}

// HeatmapCells returns one cell per completed date within [start, end],
// ordered by date. Dates are ISO YYYY-MM-DD strings, so lexicographic
// comparison is chronological.
func HeatmapCells(dates []string, start, end string) []HeatmapCell {
	cells := make([]HeatmapCell, 0, len(dates))
	for _, d := range dates {
		if d < start || d > end {
			continue
		}
		cells = append(cells, HeatmapCell{Date: d, Intensity: HeatmapIntensity})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].Date < cells[j].Date })
	return cells
}
