package charrnn

import (
	"fmt"
	"strings"
)

// A Confusion counts, for every true category (row), how often each category
// (column) was guessed.
type Confusion struct {
	Categories []string
	Counts     [][]float64
}

// NewConfusion classifies every example with c.
func NewConfusion(c *ClassifierCell, examples []Example) (*Confusion, error) {
	m := Confusion{
		Categories: c.Codec.Categories(),
		Counts:     MakeTensor2(c.Codec.NumCategories(), c.Codec.NumCategories()),
	}
	for _, ex := range examples {
		i, err := c.Codec.CategoryIndex(ex.Category)
		if err != nil {
			return nil, err
		}
		y, err := c.Classify(ex.Word)
		if err != nil {
			return nil, err
		}
		_, j := c.CategoryFromOutput(y)
		m.Counts[i][j]++
	}
	return &m, nil
}

// Normalized divides every row by its sum.
func (m *Confusion) Normalized() [][]float64 {
	res := MakeTensor2(len(m.Counts), len(m.Categories))
	for i, row := range m.Counts {
		var sum float64
		for _, v := range row {
			sum += v
		}
		if sum == 0 {
			continue
		}
		for j, v := range row {
			res[i][j] = v / sum
		}
	}
	return res
}

// Accuracy returns the fraction of examples classified correctly.
func (m *Confusion) Accuracy() float64 {
	var correct, total float64
	for i, row := range m.Counts {
		for j, v := range row {
			total += v
			if i == j {
				correct += v
			}
		}
	}
	if total == 0 {
		return 0
	}
	return correct / total
}

func (m *Confusion) String() string {
	width := 0
	for _, s := range m.Categories {
		width = max(width, len(s))
	}
	var b strings.Builder
	for i, row := range m.Normalized() {
		fmt.Fprintf(&b, "%*s", width, m.Categories[i])
		for _, v := range row {
			fmt.Fprintf(&b, " %.2f", v)
		}
		b.WriteString("\n")
	}
	return b.String()
}
