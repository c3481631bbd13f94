package seq

import (
	"fmt"
)

// FormatError is returned when the rows of an alignment cannot form a valid
// alignment: there are fewer than two of them, a row is empty, or the rows
// do not all have the same length.
type FormatError struct {
	// The 0-based row at fault, or -1 when the error concerns the alignment
	// as a whole.
	Row    int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("invalid alignment: %s", e.Reason)
	}
	return fmt.Sprintf("invalid alignment (row %d): %s", e.Row+1, e.Reason)
}

// UnknownSymbolError is returned when an alignment contains a character
// that is not in Alpha20. This includes gaps, ambiguity codes and upper
// case residues.
type UnknownSymbolError struct {
	Row, Column int
	Symbol      Residue
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown residue '%c' at row %d, column %d "+
		"(expected one of \"%s\")", e.Symbol, e.Row+1, e.Column+1, Alpha20)
}
