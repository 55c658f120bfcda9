package energy

// Uniform is a constant-energy provider: every pixel reports the same
// rightward and downward energy. With zero energy all edge weights collapse
// to the epsilon-only constant, making shortest paths pure staircases —
// handy for tests and benchmarks.
type Uniform float64

// EnergyAt returns the constant energy for any coordinate.
func (u Uniform) EnergyAt(_, _ int) (right, down float64) {
	return float64(u), float64(u)
}
