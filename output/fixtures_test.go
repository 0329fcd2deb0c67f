package output

import (
	"github.com/vegasq/neocat/model"
)

// sampleApproaches returns two linked approaches: one for a named,
// non-hazardous object and one for an unnamed hazardous object with an
// unknown diameter.
func sampleApproaches() []*model.CloseApproach {
	eros := model.NewNearEarthObject("433", "Eros", "16.84", "N")
	unnamed := model.NewNearEarthObject("2019 AA", "", "", "Y")

	return []*model.CloseApproach{
		{Designation: "433", Time: "2029-Jan-01 00:00", Distance: 0.15, Velocity: 5.0, NEO: eros},
		{Designation: "2019 AA", Time: "2020-Jan-01 12:30", Distance: 0.00025, Velocity: 22.1, NEO: unnamed},
	}
}

// countingSeq yields approaches and records how many times it was ranged.
type countingSeq struct {
	approaches []*model.CloseApproach
	ranges     int
}

func (c *countingSeq) seq(yield func(*model.CloseApproach) bool) {
	c.ranges++
	for _, a := range c.approaches {
		if !yield(a) {
			return
		}
	}
}
