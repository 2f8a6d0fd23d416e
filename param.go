package charrnn

import (
	"fmt"
)

// A Param is a block of trainable weights, holding the values used in the
// forward pass next to the gradients accumulated in the backward pass.
type Param struct {
	Val  []float64 // values of the weights
	Grad []float64 // gradients of the weights
}

func newParam(n int) *Param {
	return &Param{
		Val:  make([]float64, n),
		Grad: make([]float64, n),
	}
}

func (p *Param) String() string {
	return fmt.Sprintf("{%.3g %.3g}", p.Val, p.Grad)
}

func (p *Param) clearGrad() {
	for i := range p.Grad {
		p.Grad[i] = 0
	}
}

// A Model is a set of parameters shared by every time step of a recurrence.
type Model interface {
	// Weights calls f on every parameter of the model, tagged by name.
	Weights(f func(tag string, p *Param))

	// ClearGradients sets the gradients of all parameters to zero.
	ClearGradients()

	NumWeights() int
}

func numWeights(m Model) int {
	n := 0
	m.Weights(func(tag string, p *Param) { n += len(p.Val) })
	return n
}

func clearGradients(m Model) {
	m.Weights(func(tag string, p *Param) { p.clearGrad() })
}

// WeightsVal returns a copy of all parameter values of m, in the order of
// m.Weights.
func WeightsVal(m Model) []float64 {
	v := make([]float64, 0, m.NumWeights())
	m.Weights(func(tag string, p *Param) { v = append(v, p.Val...) })
	return v
}
