package submat

import (
	"math"

	"github.com/TuftsBCB/submat/seq"
)

// DefaultScale converts log10-odds to the half-bit scale used by
// conventional substitution matrices.
const DefaultScale = 1 / 0.16

// Config controls how a substitution matrix is built.
type Config struct {
	// The multiplier applied to every log10-odds ratio before rounding.
	Scale float64

	// The number of goroutines computing rows of the matrix. When this is
	// less than 2, the matrix is computed sequentially. The result does not
	// depend on the number of workers.
	Workers int
}

var DefaultConfig = Config{
	Scale:   DefaultScale,
	Workers: 1,
}

// Build computes the substitution matrix of the alignment with the default
// configuration.
func Build(msa seq.MSA) *Matrix {
	return DefaultConfig.Build(msa)
}

// Build computes the substitution matrix of the alignment. The column
// counts and background frequencies are computed once and shared (read
// only) by every row.
func (c Config) Build(msa seq.MSA) *Matrix {
	fp := msa.Profile()
	bg := fp.Background()
	total := TotalPossiblePairs(msa)

	rowScores := func(a int) [seq.AlphaSize]int {
		var row [seq.AlphaSize]int
		for b := 0; b < seq.AlphaSize; b++ {
			row[b] = Score(PairCount(fp, a, b), total, bg[a], bg[b], c.Scale)
		}
		return row
	}

	m := newMatrix()
	if c.Workers < 2 {
		for a := 0; a < seq.AlphaSize; a++ {
			m.Scores[a] = rowScores(a)
		}
		return m
	}

	pool := newRowWorkers(min(c.Workers, seq.AlphaSize), rowScores)
	go func() {
		for a := 0; a < seq.AlphaSize; a++ {
			pool.enqueue(a)
		}
		pool.done()
	}()
	for result := range pool.results {
		m.Scores[result.row] = result.scores
	}
	return m
}

// Score computes a single cell of a substitution matrix from the number of
// pairs of residues (a, b), the total possible number of pairs in the
// alignment and the background frequencies of a and b.
//
// If any of pairs, total, bgA or bgB is zero, the score is 0.
func Score(pairs, total int, bgA, bgB, scale float64) int {
	if pairs == 0 || total == 0 || bgA == 0 || bgB == 0 {
		return 0
	}
	prob := float64(pairs) / float64(total)
	return Round(scale * math.Log10(prob/(bgA*bgB)))
}
