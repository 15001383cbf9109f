package plan

// FilterByDensity thins a line family for display, keeping only lines whose
// numeric identifier is exactly divisible by density. A density of 1 or less
// returns the input unchanged.
//
// The filter is deterministic, idempotent, and order-preserving.
func FilterByDensity(lines []LineTrace, density int) []LineTrace {
	if density <= 1 {
		return lines
	}

	filtered := make([]LineTrace, 0, len(lines)/density+1)
	for _, line := range lines {
		if line.ID%density == 0 {
			filtered = append(filtered, line)
		}
	}
	return filtered
}
