package gravity

import (
	"math"
	"sync"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// parallelMin is the star count below which goroutine fan-out costs
// more than the sweep itself.
const parallelMin = 256

// sweepParallel splits the sweep into row chunks, one worker per chunk.
// Each worker owns its rows of dst outright, so the third-law pairing is
// given up in exchange for write-conflict-free full rows.
func (f *Field) sweepParallel(dst []stars.Vec2, ss []stars.Star) {
	n := len(ss)
	min2 := f.MinSeparation * f.MinSeparation

	workers := f.Workers
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			for i := start; i < end; i++ {
				pi := ss[i].Pos
				var ax, ay float64

				for j := 0; j < n; j++ {
					if ss[j].ID == ss[i].ID {
						continue
					}

					rx := ss[j].Pos.X - pi.X
					ry := ss[j].Pos.Y - pi.Y
					r2 := rx*rx + ry*ry
					if r2 < min2 {
						r2 = min2
					}
					if r2 == 0 {
						continue
					}

					rInv := 1.0 / math.Sqrt(r2)
					aij := f.G * ss[j].Mass * rInv * rInv * rInv
					ax += aij * rx
					ay += aij * ry
				}

				dst[i] = stars.Vec2{X: ax, Y: ay}
			}
		}(start, end)
	}

	wg.Wait()
}
