package loader

// DefaultThreshold is the number of rows from the end at which a view
// should ask for the next page.
const DefaultThreshold = 5

// ShouldLoad reports whether a cursor at position in a list of total rows
// is close enough to the end to request more. An empty list always loads.
func ShouldLoad(position, total, threshold int) bool {
	if total == 0 {
		return true
	}
	if threshold < 0 {
		threshold = 0
	}
	return position >= total-1-threshold
}
