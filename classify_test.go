package charrnn

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/gonum/floats"
)

func TestClassify(t *testing.T) {
	codec, err := NewCodec(DefaultLetters, []string{"English", "Korean", "German"})
	if err != nil {
		t.Fatalf("%v", err)
	}
	c := NewClassifierCell(codec, 16, rand.NewPCG(1, 1))
	for _, word := range []string{"K", "Kim", "O'Neal", "Schmidt Meyer"} {
		y, err := c.Classify(word)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if len(y) != codec.NumCategories() {
			t.Errorf("%s: expected %d scores, got %d", word, codec.NumCategories(), len(y))
		}
		again, _ := c.Classify(word)
		if !floats.Equal(y, again) {
			t.Errorf("%s: %v != %v", word, y, again)
		}
	}
}

func TestClassifyInvalid(t *testing.T) {
	c := NewClassifierCell(newTestCodec(t), 4, rand.NewPCG(1, 1))

	_, err := c.Classify("")
	var serr *InvalidSequenceError
	if !errors.As(err, &serr) {
		t.Errorf("expected InvalidSequenceError, got %v", err)
	}
	_, err = c.Classify("abd")
	var uerr *UnknownSymbolError
	if !errors.As(err, &uerr) {
		t.Errorf("expected UnknownSymbolError, got %v", err)
	}

	if y := c.Run(nil, make([]float64, 4)); len(y) != 2 {
		t.Errorf("expected 2 scores for no input, got %v", y)
	}
}

func TestPredict(t *testing.T) {
	codec, err := NewCodec(DefaultLetters, []string{"A", "B", "C", "D"})
	if err != nil {
		t.Fatalf("%v", err)
	}
	c := NewClassifierCell(codec, 8, rand.NewPCG(2, 2))
	ps, err := c.Predict("Satoshi", 3)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(ps) != 3 {
		t.Fatalf("expected 3 predictions, got %v", ps)
	}
	for i := 1; i < len(ps); i++ {
		if ps[i].Score > ps[i-1].Score {
			t.Errorf("predictions not sorted: %v", ps)
		}
	}

	y, _ := c.Classify("Satoshi")
	name, idx := c.CategoryFromOutput(y)
	if name != ps[0].Category || idx != floats.MaxIdx(y) {
		t.Errorf("best category %s(%d), predictions %v", name, idx, ps)
	}

	all, _ := c.Predict("Satoshi", 10)
	if len(all) != 4 {
		t.Errorf("expected all 4 categories, got %v", all)
	}
}
