package submat

import (
	"bufio"
	"encoding/gob"
	"fmt"
	"io"

	"github.com/TuftsBCB/submat/seq"

	matrix "github.com/skelterjohn/go.matrix"
)

// Matrix is a substitution matrix over seq.Alpha20. Scores[i][j] is the
// score of the residues Alphabet[i] (row) and Alphabet[j] (column).
type Matrix struct {
	Scores   [seq.AlphaSize][seq.AlphaSize]int
	Alphabet seq.Alphabet
}

func newMatrix() *Matrix {
	return &Matrix{Alphabet: seq.Alpha20}
}

// Get returns the score of a pair of residues. Get panics if either residue
// is not in the alphabet of the matrix.
func (m *Matrix) Get(a, b seq.Residue) int {
	i, ok := m.Alphabet.Index(a)
	if !ok {
		panic(fmt.Sprintf("residue '%c' is not in alphabet %s", a, m.Alphabet))
	}
	j, ok := m.Alphabet.Index(b)
	if !ok {
		panic(fmt.Sprintf("residue '%c' is not in alphabet %s", b, m.Alphabet))
	}
	return m.Scores[i][j]
}

// At returns the score at row i and column j.
func (m *Matrix) At(i, j int) int {
	return m.Scores[i][j]
}

// Dense returns a copy of the scores as a dense matrix of floats.
func (m *Matrix) Dense() *matrix.DenseMatrix {
	elements := make([]float64, 0, seq.AlphaSize*seq.AlphaSize)
	for _, row := range m.Scores {
		for _, score := range row {
			elements = append(elements, float64(score))
		}
	}
	return matrix.MakeDenseMatrix(elements, seq.AlphaSize, seq.AlphaSize)
}

// Symmetric returns true if the matrix is equal to its transpose.
func (m *Matrix) Symmetric() bool {
	dense := m.Dense()
	return matrix.Equals(dense, dense.Transpose())
}

// WriteTable writes the matrix as a table with the residues of the alphabet
// labeling both the rows and the columns.
func (m *Matrix) WriteTable(w io.Writer) error {
	buf := bufio.NewWriter(w)
	fmt.Fprintf(buf, " ")
	for _, r := range m.Alphabet {
		fmt.Fprintf(buf, " %3c", r)
	}
	fmt.Fprintln(buf)
	for i, r := range m.Alphabet {
		fmt.Fprintf(buf, "%c", r)
		for _, score := range m.Scores[i] {
			fmt.Fprintf(buf, " %3d", score)
		}
		fmt.Fprintln(buf)
	}
	return buf.Flush()
}

func (m *Matrix) String() string {
	return fmt.Sprintf("%v", m.Scores)
}

// WriteGob writes a GOB encoding of the matrix.
func (m *Matrix) WriteGob(w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(m); err != nil {
		return fmt.Errorf("could not GOB encode substitution matrix: %w", err)
	}
	return nil
}

// ReadGob reads a matrix written by WriteGob.
func ReadGob(r io.Reader) (*Matrix, error) {
	var m Matrix
	if err := gob.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("could not GOB decode substitution matrix: %w",
			err)
	}
	return &m, nil
}
