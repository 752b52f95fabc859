package idtheory

import "time"

// Clock provides the wall-clock reading used to seed generated identifiers.
type Clock interface {
	Now() time.Time
}

// RealClock uses time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}
