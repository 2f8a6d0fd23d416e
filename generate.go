package charrnn

import (
	"github.com/gonum/floats"
)

// Generate writes a word of the given category.
//
// The seed is fed through the cell first. Afterwards the best scoring
// character of each step becomes the input of the next one, until EOS is
// predicted or maxLength characters have been added. The returned word
// starts with the seed and never contains EOS.
func (c *GeneratorCell) Generate(category, seed string, maxLength int) (string, error) {
	cv, err := c.Codec.CategoryToVector(category)
	if err != nil {
		return "", err
	}
	xs, err := c.Codec.SequenceToVectors(seed)
	if err != nil {
		return "", err
	}
	if len(xs) == 0 {
		return "", &InvalidSequenceError{Reason: "empty seed"}
	}

	hidden := make([]float64, c.Hidden)
	var output []float64
	for _, x := range xs {
		output, hidden = c.Step(cv, x, hidden)
	}

	word := []rune(seed)
	for i := 0; i < maxLength; i++ {
		next := floats.MaxIdx(output)
		if next == c.Codec.EOSIndex() {
			break
		}
		word = append(word, c.Codec.Symbol(next))
		output, hidden = c.Step(cv, c.Codec.oneHot(next), hidden)
	}
	return string(word), nil
}

// Samples generates one word per letter of startLetters.
func (c *GeneratorCell) Samples(category, startLetters string, maxLength int) ([]string, error) {
	words := make([]string, 0, len(startLetters))
	for _, r := range startLetters {
		w, err := c.Generate(category, string(r), maxLength)
		if err != nil {
			return nil, err
		}
		words = append(words, w)
	}
	return words, nil
}
