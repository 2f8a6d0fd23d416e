package charrnn

import (
	"fmt"
)

// An UnknownSymbolError is returned when a character outside the vocabulary
// is encoded.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}

// An UnknownCategoryError is returned when a label outside the category set
// is encoded.
type UnknownCategoryError struct {
	Category string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("unknown category %q", e.Category)
}

// An InvalidSequenceError is returned for inputs that cannot drive a
// recurrence, such as empty words or seeds.
type InvalidSequenceError struct {
	Reason string
}

func (e *InvalidSequenceError) Error() string {
	return "invalid sequence: " + e.Reason
}
