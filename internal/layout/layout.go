// Package layout resolves one day's overlapping meetings into a
// non-overlapping column layout. Meetings are partitioned into maximal
// overlap clumps, each clump gets its own greedy column assignment, and
// columns beyond the visible cap collapse into an overflow group unless
// the viewer has expanded that clump.
package layout

import (
	"fmt"
	"sort"

	"boardcal/internal/model"
)

// Placed is a meeting's resolved position within its clump. ColumnIndex
// is always less than ColumnCount.
type Placed struct {
	ID          string
	ColumnIndex int
	ColumnCount int
}

// OverflowGroup summarizes a clump whose concurrency exceeds the visible
// column cap. HiddenIDs is empty when the clump is expanded.
type OverflowGroup struct {
	ClumpID      string
	StartMinutes int
	EndMinutes   int
	HiddenIDs    []string
	Expanded     bool
}

// Result is the layout for a single day. Recomputed from scratch on
// every call; identical inputs yield identical results.
type Result struct {
	Events        []Placed
	Overflow      []OverflowGroup
	MaxConcurrent int
}

// ExpandedSet holds the clump ids the viewer has expanded this session.
type ExpandedSet map[string]struct{}

// Toggle flips a clump's expansion state.
func (s ExpandedSet) Toggle(clumpID string) {
	if _, ok := s[clumpID]; ok {
		delete(s, clumpID)
	} else {
		s[clumpID] = struct{}{}
	}
}

// Has reports whether a clump is expanded.
func (s ExpandedSet) Has(clumpID string) bool {
	_, ok := s[clumpID]
	return ok
}

// ClumpID derives the stable identity of a clump from the day key and
// the clump's overall time span, so a toggle survives re-renders and
// edits to unrelated meetings elsewhere in the day.
func ClumpID(dayKey string, startMinutes, endMinutes int) string {
	return fmt.Sprintf("clump-%s-%d-%d", dayKey, startMinutes, endMinutes)
}

// Day lays out one day's meetings. maxCols is the current visible column
// cap; expanded lifts the cap for individual clumps. Meetings that fail
// validation are skipped one by one rather than corrupting the rest of
// the day.
func Day(meetings []model.Meeting, dayKey string, maxCols int, expanded ExpandedSet) Result {
	var res Result
	if len(meetings) == 0 {
		return res
	}
	if maxCols < 1 {
		maxCols = 1
	}

	sorted := make([]model.Meeting, 0, len(meetings))
	for _, m := range meetings {
		if err := m.Validate(); err != nil {
			continue
		}
		sorted = append(sorted, m)
	}
	if len(sorted) == 0 {
		return res
	}

	// Sort by start ascending, longer meetings first on ties. Column
	// assignment below depends on this order for visual stability.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].StartMinutes != sorted[j].StartMinutes {
			return sorted[i].StartMinutes < sorted[j].StartMinutes
		}
		return sorted[i].Duration() > sorted[j].Duration()
	})

	// Maximal overlap clumps in one linear pass: a meeting starting at
	// or after the running max end opens a new clump.
	clumpStart := 0
	clumpMaxEnd := sorted[0].EndMinutes
	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartMinutes < clumpMaxEnd {
			if sorted[i].EndMinutes > clumpMaxEnd {
				clumpMaxEnd = sorted[i].EndMinutes
			}
			continue
		}
		layoutClump(&res, sorted[clumpStart:i], dayKey, maxCols, expanded)
		clumpStart = i
		clumpMaxEnd = sorted[i].EndMinutes
	}
	layoutClump(&res, sorted[clumpStart:], dayKey, maxCols, expanded)
	return res
}

// layoutClump assigns columns within one clump by greedy first-fit
// interval coloring. Greedy is not guaranteed optimal for pathological
// orderings; combined with the start/duration sort it gives stable,
// visually sensible packing, which matters more here than a minimal
// column count.
func layoutClump(res *Result, clump []model.Meeting, dayKey string, maxCols int, expanded ExpandedSet) {
	var columnEnds []int
	columnOf := make([]int, len(clump))
	clumpStart := clump[0].StartMinutes
	clumpEnd := clump[0].EndMinutes

	for i, m := range clump {
		if m.StartMinutes < clumpStart {
			clumpStart = m.StartMinutes
		}
		if m.EndMinutes > clumpEnd {
			clumpEnd = m.EndMinutes
		}
		placed := -1
		for c, end := range columnEnds {
			if m.StartMinutes >= end {
				placed = c
				break
			}
		}
		if placed == -1 {
			placed = len(columnEnds)
			columnEnds = append(columnEnds, m.EndMinutes)
		} else {
			columnEnds[placed] = m.EndMinutes
		}
		columnOf[i] = placed
	}

	concurrency := len(columnEnds)
	if concurrency > res.MaxConcurrent {
		res.MaxConcurrent = concurrency
	}

	clumpID := ClumpID(dayKey, clumpStart, clumpEnd)
	isExpanded := expanded.Has(clumpID)
	visible := concurrency
	if !isExpanded && visible > maxCols {
		visible = maxCols
	}

	var hidden []string
	for i, m := range clump {
		if columnOf[i] < visible {
			res.Events = append(res.Events, Placed{ID: m.ID, ColumnIndex: columnOf[i], ColumnCount: visible})
		} else {
			hidden = append(hidden, m.ID)
		}
	}

	if concurrency > maxCols {
		res.Overflow = append(res.Overflow, OverflowGroup{
			ClumpID:      clumpID,
			StartMinutes: clumpStart,
			EndMinutes:   clumpEnd,
			HiddenIDs:    hidden,
			Expanded:     isExpanded,
		})
	}
}

// MaxVisibleColumns derives the column cap from the available display
// width in pixels, using coarse breakpoints.
func MaxVisibleColumns(width int) int {
	switch {
	case width < 640:
		return 1
	case width < 1024:
		return 3
	}
	return 5
}
