package schedule

// CandidateStarts emits the raw candidate start points for the given windows
// as ascending minutes from midnight, one sequence per window: the window's
// start, then every granularity step strictly below the window's end. Whether
// a booking of some duration actually fits is the resolver's call, since the
// generator never sees the requested duration.
func CandidateStarts(windows []Window, granularityMin int) []int {
	if granularityMin <= 0 {
		return nil
	}
	var points []int
	for _, w := range windows {
		for m := w.StartMin; m < w.EndMin; m += granularityMin {
			points = append(points, m)
		}
	}
	return points
}
