package util

import (
	"os"

	"github.com/TuftsBCB/submat/seq"
	"github.com/TuftsBCB/submat/submat"
)

// AlignmentRead reads the alignment at path. It is read as aligned FASTA
// when the "fasta" flag is set, and as one sequence per line otherwise.
func AlignmentRead(path string) (seq.MSA, error) {
	f, err := os.Open(path)
	if err != nil {
		return seq.MSA{}, err
	}
	defer f.Close()

	if FlagFasta {
		return seq.ReadFasta(f)
	}
	return seq.ReadAlignment(f)
}

func MatrixWrite(path string, m *submat.Matrix) {
	f := CreateFile(path)
	Assert(m.WriteGob(f), "Could not write matrix to '%s'", path)
	Assert(f.Close(), "Could not close '%s'", path)
}

func MatrixRead(path string) *submat.Matrix {
	f := OpenFile(path)
	defer f.Close()

	m, err := submat.ReadGob(f)
	Assert(err, "Could not read matrix '%s'", path)
	return m
}
