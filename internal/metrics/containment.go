package metrics

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// Containment reports the fraction of observed states in which every
// star was still inside the domain extents.
type Containment struct {
	name       string
	halfW      float64
	halfH      float64
	violations int
	samples    int
}

func NewContainment(d stars.Domain) *Containment {
	return &Containment{
		name:  "containment",
		halfW: d.Width / 2,
		halfH: d.Height / 2,
	}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(s *stars.State) {
	c.samples++
	for i := range s.Stars {
		if math.Abs(s.Stars[i].Pos.X) > c.halfW || math.Abs(s.Stars[i].Pos.Y) > c.halfH {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
