package seq

// FrequencyProfile represents an alignment in terms of raw residue counts
// per column. Row i of a column corresponds to residue i of Alpha20.
//
// A FrequencyProfile is useful as an intermediate representation: counting
// residue pairs only needs the number of times each residue occurs in a
// column, not which sequences they occur in.
type FrequencyProfile struct {
	// The columns of a frequency profile.
	Freqs [][AlphaSize]int

	// The number of sequences that were counted in each column.
	NumSeqs int
}

// Profile computes the frequency profile of the alignment.
func (m MSA) Profile() *FrequencyProfile {
	freqs := make([][AlphaSize]int, m.length)
	for _, s := range m.entries {
		for col, r := range s.Residues {
			freqs[col][r.Index()]++
		}
	}
	return &FrequencyProfile{freqs, len(m.entries)}
}

// Len returns the number of columns in the frequency profile.
func (fp *FrequencyProfile) Len() int {
	return len(fp.Freqs)
}

// Count returns the number of times the residue with the given Alpha20
// index occurs in a column.
func (fp *FrequencyProfile) Count(column, residue int) int {
	return fp.Freqs[column][residue]
}

// Totals returns the number of times each residue occurs across all
// columns.
func (fp *FrequencyProfile) Totals() [AlphaSize]int {
	var tots [AlphaSize]int
	for _, column := range fp.Freqs {
		for i, freq := range column {
			tots[i] += freq
		}
	}
	return tots
}
