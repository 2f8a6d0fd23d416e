package charrnn

import (
	"errors"
	"testing"
)

func TestCodecRoundTrip(t *testing.T) {
	codec, err := NewCodec(DefaultLetters, []string{"English", "Korean"})
	if err != nil {
		t.Fatalf("%v", err)
	}
	if codec.NumSymbols() != 58 {
		t.Fatalf("expected 57 letters and EOS, got %d symbols", codec.NumSymbols())
	}
	if codec.EOSIndex() != codec.NumSymbols()-1 || codec.Symbol(codec.EOSIndex()) != EOS {
		t.Fatalf("EOS is not the last symbol")
	}
	if codec.Letters() != DefaultLetters {
		t.Errorf("letters %q", codec.Letters())
	}

	for i := 0; i < codec.NumSymbols(); i++ {
		s := codec.Symbol(i)
		v, err := codec.SymbolToVector(s)
		if err != nil {
			t.Fatalf("%v", err)
		}
		if got := codec.VectorToSymbol(v); got != s {
			t.Errorf("round trip of %q gave %q", s, got)
		}
		if idx, _ := codec.IndexOf(s); idx != i {
			t.Errorf("index of %q is %d, expected %d", s, idx, i)
		}
	}
}

func TestCategoryToVector(t *testing.T) {
	categories := []string{"English", "Korean", "German"}
	codec, err := NewCodec(DefaultLetters, categories)
	if err != nil {
		t.Fatalf("%v", err)
	}
	for _, c := range categories {
		v, err := codec.CategoryToVector(c)
		if err != nil {
			t.Fatalf("%v", err)
		}
		idx, _ := codec.CategoryIndex(c)
		for i, x := range v {
			if i == idx && x != 1 || i != idx && x != 0 {
				t.Errorf("%s: %v", c, v)
			}
		}
	}

	_, err = codec.CategoryToVector("Klingon")
	var cerr *UnknownCategoryError
	if !errors.As(err, &cerr) || cerr.Category != "Klingon" {
		t.Errorf("expected UnknownCategoryError, got %v", err)
	}
}

func TestSequenceToVectors(t *testing.T) {
	codec := newTestCodec(t)
	vs, err := codec.SequenceToVectors("cab")
	if err != nil {
		t.Fatalf("%v", err)
	}
	if len(vs) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vs))
	}
	for i, want := range "cab" {
		if got := codec.VectorToSymbol(vs[i]); got != want {
			t.Errorf("position %d: %q != %q", i, got, want)
		}
	}

	vs, err = codec.SequenceToVectors("")
	if err != nil || len(vs) != 0 {
		t.Errorf("empty word gave %v, %v", vs, err)
	}

	_, err = codec.SequenceToVectors("abz")
	var serr *UnknownSymbolError
	if !errors.As(err, &serr) || serr.Symbol != 'z' {
		t.Errorf("expected UnknownSymbolError, got %v", err)
	}
}

func TestNewCodecDuplicates(t *testing.T) {
	if _, err := NewCodec("aba", []string{"x"}); err == nil {
		t.Errorf("duplicate letters accepted")
	}
	if _, err := NewCodec("ab", []string{"x", "x"}); err == nil {
		t.Errorf("duplicate categories accepted")
	}
	if _, err := NewCodec("ab", nil); err == nil {
		t.Errorf("empty category set accepted")
	}
}
