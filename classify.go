package charrnn

import (
	"fmt"
	"sort"
)

// Run drives the cell over the one-hot inputs xs starting from hidden, and
// returns the scores of the last step only.
// With no inputs, the scores of a zero input are returned; they carry no
// meaning.
func (c *ClassifierCell) Run(xs [][]float64, hidden []float64) []float64 {
	if len(xs) == 0 {
		return c.forward(make([]float64, c.Codec.NumSymbols()), hidden).Y
	}
	var y []float64
	for _, x := range xs {
		y, hidden = c.Step(x, hidden)
	}
	return y
}

// Classify returns the raw category scores of word, read from a zero hidden
// state.
func (c *ClassifierCell) Classify(word string) ([]float64, error) {
	xs, err := c.encode(word)
	if err != nil {
		return nil, err
	}
	return c.Run(xs, make([]float64, c.Hidden)), nil
}

func (c *ClassifierCell) encode(word string) ([][]float64, error) {
	xs, err := c.Codec.SequenceToVectors(word)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, &InvalidSequenceError{Reason: "empty word"}
	}
	return xs, nil
}

// A Prediction is a category with its log probability.
type Prediction struct {
	Category string
	Score    float64
}

func (p Prediction) String() string {
	return fmt.Sprintf("(%.2f) %s", p.Score, p.Category)
}

type ByScoreDesc []Prediction

func (a ByScoreDesc) Len() int           { return len(a) }
func (a ByScoreDesc) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a ByScoreDesc) Less(i, j int) bool { return a[i].Score > a[j].Score }

// Rank turns category scores into predictions sorted from the most to the
// least likely category.
func (c *ClassifierCell) Rank(output []float64) []Prediction {
	logp := LogSoftmax(output)
	ps := make([]Prediction, len(logp))
	for i, v := range logp {
		ps[i] = Prediction{Category: c.Codec.Category(i), Score: v}
	}
	sort.Stable(ByScoreDesc(ps))
	return ps
}

// Predict returns the k most likely categories of word.
func (c *ClassifierCell) Predict(word string, k int) ([]Prediction, error) {
	y, err := c.Classify(word)
	if err != nil {
		return nil, err
	}
	ps := c.Rank(y)
	if k < len(ps) {
		ps = ps[:k]
	}
	return ps, nil
}

// CategoryFromOutput returns the best scoring category and its index.
func (c *ClassifierCell) CategoryFromOutput(output []float64) (string, int) {
	p := c.Rank(output)[0]
	i, _ := c.Codec.CategoryIndex(p.Category)
	return p.Category, i
}
