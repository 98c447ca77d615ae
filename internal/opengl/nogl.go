//go:build nogl

package opengl

import (
	"fmt"
	"os"

	"github.com/oranellis/universe-simulation/internal/sim"
	"github.com/oranellis/universe-simulation/internal/stars"
)

// Run reports that the binary was built without OpenGL support.
func Run(shared *sim.Shared, domain stars.Domain, frameRate float64, stop func()) error {
	if stop != nil {
		stop()
	}
	return fmt.Errorf("%s was built without OpenGL support", os.Args[0])
}
