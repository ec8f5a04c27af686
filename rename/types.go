package rename

// ProfileResult tallies the rename pass over a single profile
type ProfileResult struct {
	ProfileID string
	Attempted int // folders that needed the prefix
	Succeeded int
	Skipped   int // folders already carrying the prefix
	Failed    bool
}

// FullySuccessful reports whether every attempted rename succeeded.
// A profile with zero folders to rename is vacuously successful.
func (r ProfileResult) FullySuccessful() bool {
	return !r.Failed && r.Succeeded == r.Attempted
}

// RunResult aggregates the results of a run across all profiles
type RunResult struct {
	Profiles []ProfileResult
}

// Succeeded returns the number of fully successful profiles
func (r RunResult) Succeeded() int {
	count := 0
	for _, p := range r.Profiles {
		if p.FullySuccessful() {
			count++
		}
	}
	return count
}

// AllSuccessful reports whether every profile was fully successful
func (r RunResult) AllSuccessful() bool {
	return r.Succeeded() == len(r.Profiles)
}
