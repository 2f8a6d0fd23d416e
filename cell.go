package charrnn

import (
	"math/rand/v2"

	"github.com/gonum/floats"
)

// A ClassifierCell reads one character per step and scores the categories.
//
// The input and the hidden state are concatenated and projected by I2H into
// the new hidden state and by I2O into the category scores. The hidden
// update has no squashing function.
type ClassifierCell struct {
	Codec  *Codec
	Hidden int

	I2H *Linear
	I2O *Linear
}

func NewClassifierCell(codec *Codec, hidden int, src rand.Source) *ClassifierCell {
	combined := codec.NumSymbols() + hidden
	c := ClassifierCell{
		Codec:  codec,
		Hidden: hidden,
		I2H:    NewLinear(combined, hidden),
		I2O:    NewLinear(combined, codec.NumCategories()),
	}
	c.I2H.Init(src)
	c.I2O.Init(src)
	return &c
}

// Step consumes a one-hot input and the previous hidden state, and returns
// the category scores and the new hidden state.
func (c *ClassifierCell) Step(input, hidden []float64) (output, newHidden []float64) {
	s := c.forward(input, hidden)
	return s.Y, s.H
}

func (c *ClassifierCell) forward(input, hidden []float64) *classifierStep {
	s := classifierStep{
		cell:     c,
		Combined: concat(input, hidden),
	}
	s.H = c.I2H.Forward(s.Combined)
	s.Y = c.I2O.Forward(s.Combined)
	return &s
}

func (c *ClassifierCell) Weights(f func(string, *Param)) {
	c.I2H.Weights("i2h", f)
	c.I2O.Weights("i2o", f)
}

func (c *ClassifierCell) ClearGradients() {
	clearGradients(c)
}

func (c *ClassifierCell) NumWeights() int {
	return numWeights(c)
}

// classifierStep records the activations of one time step.
type classifierStep struct {
	cell     *ClassifierCell
	Combined []float64
	H        []float64
	Y        []float64
}

// backward takes the gradients on the outputs of the step, either of which
// may be nil, and returns the gradient on the previous hidden state.
func (s *classifierStep) backward(dy, dh []float64) []float64 {
	dc := make([]float64, len(s.Combined))
	if dy != nil {
		s.cell.I2O.Backward(s.Combined, dy, dc)
	}
	if dh != nil {
		s.cell.I2H.Backward(s.Combined, dh, dc)
	}
	return dc[s.cell.Codec.NumSymbols():]
}

// A GeneratorCell predicts the next character of a word of a given category.
//
// The category, the input and the hidden state are concatenated and
// projected by I2H into the new hidden state and by I2O into an intermediate
// output. O2O then maps the intermediate output together with the new hidden
// state to the character scores.
type GeneratorCell struct {
	Codec  *Codec
	Hidden int

	I2H *Linear
	I2O *Linear
	O2O *Linear
}

func NewGeneratorCell(codec *Codec, hidden int, src rand.Source) *GeneratorCell {
	v := codec.NumSymbols()
	combined := codec.NumCategories() + v + hidden
	c := GeneratorCell{
		Codec:  codec,
		Hidden: hidden,
		I2H:    NewLinear(combined, hidden),
		I2O:    NewLinear(combined, v),
		O2O:    NewLinear(v+hidden, v),
	}
	c.I2H.Init(src)
	c.I2O.Init(src)
	c.O2O.Init(src)
	return &c
}

// Step consumes a category vector, a one-hot input and the previous hidden
// state, and returns the character scores and the new hidden state.
func (c *GeneratorCell) Step(category, input, hidden []float64) (output, newHidden []float64) {
	s := c.forward(category, input, hidden)
	return s.Y, s.H
}

func (c *GeneratorCell) forward(category, input, hidden []float64) *generatorStep {
	s := generatorStep{
		cell:     c,
		Combined: concat(category, input, hidden),
	}
	s.H = c.I2H.Forward(s.Combined)
	s.Mid = c.I2O.Forward(s.Combined)
	s.MidH = concat(s.Mid, s.H)
	s.Y = c.O2O.Forward(s.MidH)
	return &s
}

func (c *GeneratorCell) Weights(f func(string, *Param)) {
	c.I2H.Weights("i2h", f)
	c.I2O.Weights("i2o", f)
	c.O2O.Weights("o2o", f)
}

func (c *GeneratorCell) ClearGradients() {
	clearGradients(c)
}

func (c *GeneratorCell) NumWeights() int {
	return numWeights(c)
}

type generatorStep struct {
	cell     *GeneratorCell
	Combined []float64
	H        []float64
	Mid      []float64
	MidH     []float64
	Y        []float64
}

func (s *generatorStep) backward(dy, dh []float64) []float64 {
	v := len(s.Mid)
	dMidH := make([]float64, len(s.MidH))
	s.cell.O2O.Backward(s.MidH, dy, dMidH)
	dMid := dMidH[:v]
	dH := dMidH[v:]
	if dh != nil {
		floats.Add(dH, dh)
	}

	dc := make([]float64, len(s.Combined))
	s.cell.I2O.Backward(s.Combined, dMid, dc)
	s.cell.I2H.Backward(s.Combined, dH, dc)
	return dc[len(s.Combined)-s.cell.Hidden:]
}
