package charrnn

import (
	"github.com/gonum/floats"
)

const (
	DefaultHidden = 128

	ClassifierLearningRate = 0.005
	GeneratorLearningRate  = 0.0005

	DefaultMaxLength = 20
)

// An Example is a word labelled with its category.
type Example struct {
	Word     string
	Category string
}

// SGD performs plain stochastic gradient descent, one update per example.
type SGD struct {
	M            Model
	LearningRate float64
}

// Update moves every parameter against its gradient.
func (s *SGD) Update() {
	s.M.Weights(func(tag string, p *Param) {
		floats.AddScaled(p.Val, -s.LearningRate, p.Grad)
	})
}

// TrainClassifier performs one forward and backward pass over the example and
// updates the parameters once. It returns the scores of the last step and
// the loss.
func TrainClassifier(c *ClassifierCell, ex Example, learningRate float64) ([]float64, float64, error) {
	y, loss, err := classifierForwardBackward(c, ex)
	if err != nil {
		return nil, 0, err
	}
	(&SGD{M: c, LearningRate: learningRate}).Update()
	return y, loss, nil
}

// classifierForwardBackward leaves in c the gradients of the cross entropy
// of the last step's scores against the category of ex.
func classifierForwardBackward(c *ClassifierCell, ex Example) ([]float64, float64, error) {
	target, err := c.Codec.CategoryIndex(ex.Category)
	if err != nil {
		return nil, 0, err
	}
	xs, err := c.encode(ex.Word)
	if err != nil {
		return nil, 0, err
	}

	steps := make([]*classifierStep, len(xs))
	hidden := make([]float64, c.Hidden)
	for t, x := range xs {
		steps[t] = c.forward(x, hidden)
		hidden = steps[t].H
	}
	last := steps[len(steps)-1]
	loss, dy := crossEntropy(last.Y, target)

	c.ClearGradients()
	dh := last.backward(dy, nil)
	for t := len(steps) - 2; t >= 0; t-- {
		dh = steps[t].backward(nil, dh)
	}
	return last.Y, loss, nil
}

// TrainGenerator trains c to predict every next character of the example
// word, and EOS after its last one. The true characters are fed as inputs.
// The per step losses are summed into the returned loss, and the parameters
// are updated once.
func TrainGenerator(c *GeneratorCell, ex Example, learningRate float64) (float64, error) {
	loss, err := generatorForwardBackward(c, ex)
	if err != nil {
		return 0, err
	}
	(&SGD{M: c, LearningRate: learningRate}).Update()
	return loss, nil
}

func generatorForwardBackward(c *GeneratorCell, ex Example) (float64, error) {
	cv, err := c.Codec.CategoryToVector(ex.Category)
	if err != nil {
		return 0, err
	}
	xs, targets, err := generatorTargets(c.Codec, ex.Word)
	if err != nil {
		return 0, err
	}

	steps := make([]*generatorStep, len(xs))
	dys := make([][]float64, len(xs))
	hidden := make([]float64, c.Hidden)
	var loss float64
	for t, x := range xs {
		steps[t] = c.forward(cv, x, hidden)
		hidden = steps[t].H
		var l float64
		l, dys[t] = crossEntropy(steps[t].Y, targets[t])
		loss += l
	}

	c.ClearGradients()
	var dh []float64
	for t := len(steps) - 1; t >= 0; t-- {
		dh = steps[t].backward(dys[t], dh)
	}
	return loss, nil
}

// generatorTargets returns the inputs of word and, for each of them, the
// index of the symbol that follows.
func generatorTargets(codec *Codec, word string) ([][]float64, []int, error) {
	xs, err := codec.SequenceToVectors(word)
	if err != nil {
		return nil, nil, err
	}
	if len(xs) == 0 {
		return nil, nil, &InvalidSequenceError{Reason: "empty word"}
	}
	rs := []rune(word)
	targets := make([]int, len(rs))
	for t := 1; t < len(rs); t++ {
		targets[t-1], _ = codec.IndexOf(rs[t])
	}
	targets[len(rs)-1] = codec.EOSIndex()
	return xs, targets, nil
}
