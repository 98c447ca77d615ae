package gravity

import (
	"math"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// PotentialEnergy returns the total pairwise gravitational potential,
// -G*mi*mj/r summed over unordered pairs, with r floored at
// MinSeparation to match the force law.
func (f *Field) PotentialEnergy(ss []stars.Star) float64 {
	pe := 0.0
	n := len(ss)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if ss[j].ID == ss[i].ID {
				continue
			}
			r := math.Sqrt(ss[j].Pos.Sub(ss[i].Pos).NormSq())
			if r < f.MinSeparation {
				r = f.MinSeparation
			}
			if r == 0 {
				continue
			}
			pe -= f.G * ss[i].Mass * ss[j].Mass / r
		}
	}

	return pe
}

// Energy returns kinetic plus potential energy. Exactly conserved by
// the continuous dynamics, so its drift measures integration error.
func (f *Field) Energy(ss []stars.Star) float64 {
	return stars.KineticEnergy(ss) + f.PotentialEnergy(ss)
}
