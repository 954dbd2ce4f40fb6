package compressing

import (
	"fmt"
	"time"
)

// Stats are the figures of a single transform.
type Stats struct {
	// Read is the number of bytes read from the input.
	Read int64
	// Written is the number of bytes written to the output.
	Written int64
	// Elapsed is the time spent in the transform, verification excluded.
	Elapsed time.Duration
}

// SpaceSaved returns how much smaller the output is than the input, as a
// percentage of the input. It is negative when the output is larger, and 0
// for an empty input.
func (s *Stats) SpaceSaved() float64 {
	if s.Read == 0 {
		return 0
	}

	return (1 - float64(s.Written)/float64(s.Read)) * 100
}

func (s *Stats) String() string {
	return fmt.Sprintf("%d -> %d bytes in %s, saved %.2f%%",
		s.Read, s.Written, s.Elapsed, s.SpaceSaved())
}
