package submat

import (
	"github.com/TuftsBCB/submat/seq"
)

// CalculatePairs returns the number of unordered pairs that can be formed
// from n items. It is 0 when n < 2.
func CalculatePairs(n int) int {
	if n < 2 {
		return 0
	}
	return n * (n - 1) / 2
}

// TotalPossiblePairs returns the number of residue pairs an alignment can
// have: every pair of sequences in every column.
func TotalPossiblePairs(msa seq.MSA) int {
	return CalculatePairs(msa.NumSeqs()) * msa.Len()
}

// PairCount returns the number of times the residues with Alpha20 indices a
// and b occur together in the same column, summed over every column of the
// frequency profile.
func PairCount(fp *seq.FrequencyProfile, a, b int) int {
	pairs := 0
	for _, column := range fp.Freqs {
		if a == b {
			pairs += CalculatePairs(column[a])
		} else {
			pairs += column[a] * column[b]
		}
	}
	return pairs
}

// PairCountMSA is like PairCount, but tallies the columns of the alignment
// directly. It returns 0 if either residue is not in Alpha20.
func PairCountMSA(msa seq.MSA, a, b seq.Residue) int {
	if a.Index() < 0 || b.Index() < 0 {
		return 0
	}
	pairs := 0
	for col := 0; col < msa.Len(); col++ {
		ka, kb := 0, 0
		for _, r := range msa.Column(col) {
			if r == a {
				ka++
			}
			if r == b {
				kb++
			}
		}
		if a == b {
			pairs += CalculatePairs(ka)
		} else {
			pairs += ka * kb
		}
	}
	return pairs
}
