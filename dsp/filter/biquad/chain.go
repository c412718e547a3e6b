package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// Higher-order Butterworth filters are realized as a Chain where each
// second-order section feeds into the next.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade with one Section per coefficient set.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{sections: make([]Section, len(coeffs))}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// SteadyState returns the per-section delay-line states the cascade holds
// after settling on the constant input x. Loading it with SetState before
// processing a block that starts at x removes the start-up transient.
//
// The states are linear in x, so callers may compute them once for x = 1
// and scale.
func (c *Chain) SteadyState(x float64) [][2]float64 {
	states := make([][2]float64, len(c.sections))

	in := x
	for i := range c.sections {
		states[i], in = c.sections[i].steadyState(in)
	}

	return states
}

// ScaleStates returns a copy of states with every element multiplied by k.
func ScaleStates(states [][2]float64, k float64) [][2]float64 {
	out := make([][2]float64, len(states))
	for i, st := range states {
		out[i] = [2]float64{st[0] * k, st[1] * k}
	}

	return out
}
