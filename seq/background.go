package seq

import (
	"gonum.org/v1/gonum/floats"
)

// Background is the null model of an alignment: the frequency of each
// residue in Alpha20 among all residues in the alignment, ignoring which
// column they appear in.
type Background [AlphaSize]float64

// Background computes the background frequencies of the alignment. Since
// every residue of an MSA is in Alpha20, the frequencies sum to 1.
func (m MSA) Background() Background {
	return m.Profile().Background()
}

// Background computes background frequencies from the column counts of a
// frequency profile.
func (fp *FrequencyProfile) Background() Background {
	var bg Background
	tots := fp.Totals()
	for i, tot := range tots {
		bg[i] = float64(tot)
	}
	if total := floats.Sum(bg[:]); total > 0 {
		floats.Scale(1/total, bg[:])
	}
	return bg
}

// Freq returns the background frequency of a residue. Residues outside of
// Alpha20 have a frequency of 0.
func (bg Background) Freq(r Residue) float64 {
	if i := r.Index(); i >= 0 {
		return bg[i]
	}
	return 0
}

// Sum returns the sum of all frequencies.
func (bg Background) Sum() float64 {
	return floats.Sum(bg[:])
}
