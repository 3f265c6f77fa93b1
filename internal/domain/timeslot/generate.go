package timeslot

import "time"

const DefaultGranularity = 30 * time.Minute

// Generate partitions [start, end) into contiguous slots of the given width.
// A trailing remainder shorter than granularity is dropped.
func Generate(start, end time.Time, granularity time.Duration) []Interval {
	if granularity <= 0 || !end.After(start) {
		return nil
	}

	slots := make([]Interval, 0, int(end.Sub(start)/granularity))
	for s := start; !s.Add(granularity).After(end); s = s.Add(granularity) {
		slots = append(slots, Interval{Start: s, End: s.Add(granularity)})
	}
	return slots
}
