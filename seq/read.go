package seq

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/TuftsBCB/io/fasta"
)

// ReadAlignment reads an alignment with one sequence per line. Surrounding
// white space is trimmed from every line and blank lines are skipped. Each
// sequence is named by its line number.
//
// The residues must be lower case members of Alpha20. See NewMSA for the
// errors returned for malformed alignments.
func ReadAlignment(r io.Reader) (MSA, error) {
	buf := bufio.NewReader(r)
	seqs := make([]Sequence, 0, 8)
	for lineno := 1; ; lineno++ {
		line, err := buf.ReadString('\n')
		if err != nil && err != io.EOF {
			return MSA{}, fmt.Errorf("could not read line %d: %w", lineno, err)
		}
		if line = strings.TrimSpace(line); len(line) > 0 {
			seqs = append(seqs, NewSequence(fmt.Sprintf("%d", lineno), line))
		}
		if err == io.EOF {
			break
		}
	}
	return NewMSA(seqs)
}

// ReadFasta reads an aligned FASTA file. Residues are converted to lower
// case before the alignment is validated, since FASTA files conventionally
// use upper case.
func ReadFasta(r io.Reader) (MSA, error) {
	freader := fasta.NewReader(r)
	freader.TrustSequences = true
	records, err := freader.ReadAll()
	if err != nil {
		return MSA{}, fmt.Errorf("could not read FASTA alignment: %w", err)
	}

	seqs := make([]Sequence, len(records))
	for i, rec := range records {
		residues := make([]Residue, len(rec.Residues))
		for j, r := range rec.Residues {
			residues[j] = toLower(Residue(r))
		}
		seqs[i] = Sequence{Name: rec.Name, Residues: residues}
	}
	return NewMSA(seqs)
}

func toLower(r Residue) Residue {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
