package seq

import (
	"fmt"
	"strings"
)

// MSA is a multiple sequence alignment of at least two sequences. Every
// sequence has the same non-zero length and only contains residues from
// Alpha20.
//
// An MSA cannot be changed once it is created. All accessors return copies.
type MSA struct {
	entries []Sequence
	length  int
}

// NewMSA validates the given sequences and builds an alignment from copies
// of them.
//
// A *FormatError is returned when there are fewer than two sequences, when
// the first sequence is empty or when any sequence's length differs from the
// first. An *UnknownSymbolError is returned for the first residue that is
// not in Alpha20.
func NewMSA(seqs []Sequence) (MSA, error) {
	if len(seqs) < 2 {
		return MSA{}, &FormatError{
			Row: -1,
			Reason: fmt.Sprintf("found %d sequence(s) but at least 2 "+
				"are needed to form a pair", len(seqs)),
		}
	}
	length := seqs[0].Len()
	if length == 0 {
		return MSA{}, &FormatError{Row: 0, Reason: "sequence is empty"}
	}

	entries := make([]Sequence, len(seqs))
	for row, s := range seqs {
		if s.Len() != length {
			return MSA{}, &FormatError{
				Row: row,
				Reason: fmt.Sprintf("sequence has length %d but the "+
					"alignment has length %d", s.Len(), length),
			}
		}
		for col, r := range s.Residues {
			if r.Index() < 0 {
				return MSA{}, &UnknownSymbolError{row, col, r}
			}
		}
		entries[row] = s.Copy()
	}
	return MSA{
		entries: entries,
		length:  length,
	}, nil
}

// Len returns the length of the alignment. (All entries in an MSA are
// guaranteed to have the same length.)
func (m MSA) Len() int {
	return m.length
}

// NumSeqs returns the number of sequences in the alignment.
func (m MSA) NumSeqs() int {
	return len(m.entries)
}

// Get gets a copy of the sequence at the provided row in the MSA.
func (m MSA) Get(row int) Sequence {
	return m.entries[row].Copy()
}

// Column returns the residues at the given position of every sequence, in
// row order.
func (m MSA) Column(col int) []Residue {
	column := make([]Residue, len(m.entries))
	for row, s := range m.entries {
		column[row] = s.Residues[col]
	}
	return column
}

func (m MSA) String() string {
	entries := make([]string, len(m.entries))
	for i, s := range m.entries {
		entries[i] = fmt.Sprintf(">%s\n%s", s.Name, s)
	}
	return strings.Join(entries, "\n")
}
