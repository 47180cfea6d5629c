// control/stats.go
// Author: momentics <momentics@gmail.com>
//
// Storage counters for ring containers. A Stats value is a point-in-time
// snapshot; the container is single-threaded, so no locking is involved.

package control

// Stats aggregates occupancy and growth counters for one container.
type Stats struct {
	Len     int    // current element count
	Cap     int    // backing store capacity
	Grows   uint64 // reallocations performed since construction
	PeakLen int    // highest element count ever observed
}

// Utilization returns the occupied fraction of the backing store.
func (s Stats) Utilization() float64 {
	if s.Cap == 0 {
		return 0
	}
	return float64(s.Len) / float64(s.Cap)
}
