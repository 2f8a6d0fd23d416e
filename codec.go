package charrnn

import (
	"fmt"

	"github.com/gonum/floats"
)

// EOS is the end of sequence symbol. It always has the last index of a
// vocabulary.
const EOS rune = -1

// DefaultLetters are the letters found in the names datasets.
const DefaultLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ .,;'"

// A Codec maps symbols and categories to one-hot vectors and back.
// It is immutable once created and may be shared by any number of cells.
type Codec struct {
	symbols       []rune
	index         map[rune]int
	categories    []string
	categoryIndex map[string]int
}

// NewCodec creates a Codec whose vocabulary is letters followed by EOS.
func NewCodec(letters string, categories []string) (*Codec, error) {
	c := Codec{
		index:         make(map[rune]int),
		categoryIndex: make(map[string]int),
	}
	for _, r := range letters {
		if _, ok := c.index[r]; ok {
			return nil, fmt.Errorf("duplicate letter %q", r)
		}
		c.index[r] = len(c.symbols)
		c.symbols = append(c.symbols, r)
	}
	c.index[EOS] = len(c.symbols)
	c.symbols = append(c.symbols, EOS)

	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories")
	}
	for _, s := range categories {
		if _, ok := c.categoryIndex[s]; ok {
			return nil, fmt.Errorf("duplicate category %q", s)
		}
		c.categoryIndex[s] = len(c.categories)
		c.categories = append(c.categories, s)
	}
	return &c, nil
}

// NumSymbols returns the vocabulary size, EOS included.
func (c *Codec) NumSymbols() int {
	return len(c.symbols)
}

func (c *Codec) NumCategories() int {
	return len(c.categories)
}

// EOSIndex returns the index of EOS, which is NumSymbols()-1.
func (c *Codec) EOSIndex() int {
	return len(c.symbols) - 1
}

// Letters returns the vocabulary without EOS.
func (c *Codec) Letters() string {
	return string(c.symbols[:len(c.symbols)-1])
}

func (c *Codec) Symbol(i int) rune {
	return c.symbols[i]
}

func (c *Codec) Category(i int) string {
	return c.categories[i]
}

// Categories returns a copy of the category set in index order.
func (c *Codec) Categories() []string {
	return append([]string(nil), c.categories...)
}

func (c *Codec) Contains(r rune) bool {
	_, ok := c.index[r]
	return ok && r != EOS
}

func (c *Codec) IndexOf(r rune) (int, error) {
	i, ok := c.index[r]
	if !ok {
		return 0, &UnknownSymbolError{Symbol: r}
	}
	return i, nil
}

func (c *Codec) CategoryIndex(label string) (int, error) {
	i, ok := c.categoryIndex[label]
	if !ok {
		return 0, &UnknownCategoryError{Category: label}
	}
	return i, nil
}

func (c *Codec) SymbolToVector(r rune) ([]float64, error) {
	i, err := c.IndexOf(r)
	if err != nil {
		return nil, err
	}
	return c.oneHot(i), nil
}

// VectorToSymbol decodes v to the symbol with the highest entry.
func (c *Codec) VectorToSymbol(v []float64) rune {
	return c.symbols[floats.MaxIdx(v)]
}

// SequenceToVectors encodes every character of word in order.
// An empty word yields an empty list.
func (c *Codec) SequenceToVectors(word string) ([][]float64, error) {
	vs := make([][]float64, 0, len(word))
	for _, r := range word {
		v, err := c.SymbolToVector(r)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

func (c *Codec) CategoryToVector(label string) ([]float64, error) {
	i, err := c.CategoryIndex(label)
	if err != nil {
		return nil, err
	}
	v := make([]float64, len(c.categories))
	v[i] = 1
	return v, nil
}

func (c *Codec) oneHot(i int) []float64 {
	v := make([]float64, len(c.symbols))
	v[i] = 1
	return v
}
