package manager

import "time"

// Clock is where a Session reads frame times from. Frame deltas are taken
// between successive Now calls, so only differences matter.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now, which carries a monotonic reading and is
// immune to wall clock jumps.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
