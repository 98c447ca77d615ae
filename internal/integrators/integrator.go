package integrators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/oranellis/universe-simulation/internal/stars"
)

// Integrator advances src by dt into dst. dst and src must be distinct
// states; implementations read src only, which is what keeps one star's
// update from observing another star's post-step value.
type Integrator interface {
	Step(dst, src *stars.State, sys stars.System, dt float64)
	Name() string
}

// ErrUnknownScheme is returned by New for unrecognized scheme names.
var ErrUnknownScheme = errors.New("integrators: unknown scheme")

// New resolves a scheme by name, case-insensitively.
func New(name string) (Integrator, error) {
	switch strings.ToLower(name) {
	case "euler":
		return NewEuler(), nil
	case "verlet":
		return NewVerlet(), nil
	case "rk4":
		return NewRK4(), nil
	}
	return nil, fmt.Errorf("%w %q (valid: %s)", ErrUnknownScheme, name, strings.Join(Names(), ", "))
}

// Names lists the valid scheme names in display order.
func Names() []string {
	return []string{"euler", "verlet", "rk4"}
}
