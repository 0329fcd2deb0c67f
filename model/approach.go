package model

import (
	"fmt"
	"time"

	"github.com/vegasq/neocat/timeconv"
)

// CloseApproach is a single close approach of an object to Earth.
type CloseApproach struct {
	// Designation references the approaching object's primary designation.
	Designation string

	// Time is the approach time in the source's calendar form,
	// e.g. "2029-Apr-13 21:46".
	Time string

	// Distance is the nominal approach distance in astronomical units.
	Distance float64

	// Velocity is the velocity relative to Earth in km/s.
	Velocity float64

	// NEO is the approaching object. Nil until linked.
	NEO *NearEarthObject
}

// When parses Time into a UTC timestamp.
func (a *CloseApproach) When() (time.Time, error) {
	return timeconv.CDToTime(a.Time)
}

// TimeString returns the approach time in canonical form, falling back to
// the raw source text when it cannot be parsed.
func (a *CloseApproach) TimeString() string {
	t, err := a.When()
	if err != nil {
		return a.Time
	}
	return timeconv.DatetimeToStr(t)
}

func (a *CloseApproach) String() string {
	name := a.Designation
	if a.NEO != nil {
		name = a.NEO.FullName()
	}
	return fmt.Sprintf("At %s, '%s' approaches Earth at a distance of %.2f au and a velocity of %.2f km/s",
		a.TimeString(), name, a.Distance, a.Velocity)
}
