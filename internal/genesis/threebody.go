package genesis

import "github.com/oranellis/universe-simulation/internal/stars"

// ThreeBody returns a known periodic three-body configuration: equal
// masses of 1/3 in normalized units, valid for G=1. The start is
// mirror-symmetric about the x axis and the orbit is bounded and
// periodic, which makes it the fixture for reversal and long-run
// accuracy checks.
func ThreeBody() []stars.Star {
	const m = 1.0 / 3.0
	return []stars.Star{
		{
			ID:          0,
			Pos:         stars.Vec2{X: -0.3092050, Y: 0},
			Vel:         stars.Vec2{X: 0, Y: -0.50436399},
			Mass:        m,
			Luminosity:  1,
			Temperature: 5000,
		},
		{
			ID:          1,
			Pos:         stars.Vec2{X: 0.1546025, Y: -0.09875616},
			Vel:         stars.Vec2{X: -1.18437049, Y: 0.25218199},
			Mass:        m,
			Luminosity:  1,
			Temperature: 5000,
		},
		{
			ID:          2,
			Pos:         stars.Vec2{X: 0.1546025, Y: 0.09875616},
			Vel:         stars.Vec2{X: 1.18437049, Y: 0.25218199},
			Mass:        m,
			Luminosity:  1,
			Temperature: 5000,
		},
	}
}
