package charrnn

import (
	"math"

	"github.com/gonum/floats"
)

const machineEpsilonSqrt = 1e-8 // math.Sqrt(2.2e-16)

// LogSoftmax returns the log probabilities of the scores in y.
func LogSoftmax(y []float64) []float64 {
	lse := floats.LogSumExp(y)
	res := make([]float64, len(y))
	for i, v := range y {
		res[i] = v - lse
	}
	return res
}

// crossEntropy returns -log(softmax(y)[target]) together with its gradient
// with respect to y, which is softmax(y) - onehot(target).
func crossEntropy(y []float64, target int) (float64, []float64) {
	lse := floats.LogSumExp(y)
	grad := make([]float64, len(y))
	for i, v := range y {
		grad[i] = math.Exp(v - lse)
	}
	grad[target] -= 1
	return lse - y[target], grad
}

func concat(vs ...[]float64) []float64 {
	n := 0
	for _, v := range vs {
		n += len(v)
	}
	res := make([]float64, 0, n)
	for _, v := range vs {
		res = append(res, v...)
	}
	return res
}

func MakeTensor2(n, m int) [][]float64 {
	t := make([][]float64, n)
	for i := 0; i < len(t); i++ {
		t[i] = make([]float64, m)
	}
	return t
}
