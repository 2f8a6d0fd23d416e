package charrnn

import (
	"math"
	"math/rand/v2"

	"github.com/gonum/blas"
	"github.com/gonum/blas/blas64"
	"github.com/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Linear is an affine projection y = W*x + b, where W is an Out by In matrix
// stored in row major order.
type Linear struct {
	In  int
	Out int
	W   *Param
	B   *Param
}

func NewLinear(in, out int) *Linear {
	return &Linear{
		In:  in,
		Out: out,
		W:   newParam(out * in),
		B:   newParam(out),
	}
}

// Init draws weights and biases from U(-1/sqrt(In), 1/sqrt(In)).
func (l *Linear) Init(src rand.Source) {
	k := 1 / math.Sqrt(float64(l.In))
	dist := distuv.Uniform{Min: -k, Max: k, Src: src}
	for i := range l.W.Val {
		l.W.Val[i] = dist.Rand()
	}
	for i := range l.B.Val {
		l.B.Val[i] = dist.Rand()
	}
}

func (l *Linear) Forward(x []float64) []float64 {
	y := make([]float64, l.Out)
	copy(y, l.B.Val)
	blas64.Gemv(blas.NoTrans, 1, l.matrix(l.W.Val), vector(x), 1, vector(y))
	return y
}

// Backward accumulates the parameter gradients of an application of l to x,
// given the gradient dy on its output.
// If dx is not nil, the gradient with respect to x is added to it.
func (l *Linear) Backward(x, dy, dx []float64) {
	floats.Add(l.B.Grad, dy)
	blas64.Ger(1, vector(dy), vector(x), l.matrix(l.W.Grad))
	if dx != nil {
		blas64.Gemv(blas.Trans, 1, l.matrix(l.W.Val), vector(dy), 1, vector(dx))
	}
}

func (l *Linear) Weights(prefix string, f func(string, *Param)) {
	f(prefix+".W", l.W)
	f(prefix+".B", l.B)
}

func (l *Linear) matrix(data []float64) blas64.General {
	return blas64.General{Rows: l.Out, Cols: l.In, Stride: l.In, Data: data}
}

func vector(data []float64) blas64.Vector {
	return blas64.Vector{Inc: 1, Data: data}
}
