package seq

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
)

func TestNewMSA(t *testing.T) {
	tests := [][]string{
		{"aa", "aa"},
		{"arndc", "qeghi", "lkmfp"},
		{"stwyv", "stwyv"},
	}
	for _, test := range tests {
		msa, err := NewMSA(makeSeqs(test))
		if err != nil {
			t.Fatalf("Could not build MSA from %v: %s", test, err)
		}
		testEqualAlign(t, msa, test)
	}
}

func TestNewMSAFormatError(t *testing.T) {
	tests := []struct {
		rows []string
		row  int
	}{
		{[]string{"aaa", "aa"}, 1},
		{[]string{"aaa", "aaa", "aaaa"}, 2},
		{[]string{"aaa"}, -1},
		{[]string{}, -1},
		{[]string{"", ""}, 0},
	}
	for _, test := range tests {
		_, err := NewMSA(makeSeqs(test.rows))
		var ferr *FormatError
		if !errors.As(err, &ferr) {
			t.Fatalf("Expected a FormatError for %v but got '%v'.",
				test.rows, err)
		}
		if ferr.Row != test.row {
			t.Fatalf("FormatError for %v reports row %d but should "+
				"report row %d.", test.rows, ferr.Row, test.row)
		}
	}
}

func TestNewMSAUnknownSymbol(t *testing.T) {
	tests := []struct {
		rows     []string
		row, col int
		symbol   Residue
	}{
		{[]string{"aa", "a-"}, 1, 1, '-'},
		{[]string{"xa", "aa"}, 0, 0, 'x'},
		{[]string{"ar", "aR"}, 1, 1, 'R'},
		{[]string{"abc", "aaa"}, 0, 1, 'b'},
	}
	for _, test := range tests {
		_, err := NewMSA(makeSeqs(test.rows))
		var uerr *UnknownSymbolError
		if !errors.As(err, &uerr) {
			t.Fatalf("Expected an UnknownSymbolError for %v but got '%v'.",
				test.rows, err)
		}
		if uerr.Row != test.row || uerr.Column != test.col ||
			uerr.Symbol != test.symbol {
			t.Fatalf("Got unknown symbol '%c' at (%d, %d) but expected "+
				"'%c' at (%d, %d).", uerr.Symbol, uerr.Row, uerr.Column,
				test.symbol, test.row, test.col)
		}
	}
}

func TestMSAImmutable(t *testing.T) {
	seqs := makeSeqs([]string{"ar", "nd"})
	msa, err := NewMSA(seqs)
	if err != nil {
		t.Fatal(err)
	}
	seqs[0].Residues[0] = 'v'
	got := msa.Get(0)
	got.Residues[1] = 'v'
	testEqualAlign(t, msa, []string{"ar", "nd"})
}

func TestColumn(t *testing.T) {
	msa := mustMSA(t, "arn", "dcq", "egh")
	testEqualSeq(t, msa.Column(1), []Residue("rcg"))
}

func TestReadAlignment(t *testing.T) {
	input := "arnd\n\n  cqeg \r\nhilk\n"
	msa, err := ReadAlignment(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Could not read alignment: %s", err)
	}
	testEqualAlign(t, msa, []string{"arnd", "cqeg", "hilk"})
	if name := msa.Get(2).Name; name != "4" {
		t.Fatalf("Third sequence should be named after line 4, got '%s'.",
			name)
	}
}

func TestReadAlignmentNoTrailingNewline(t *testing.T) {
	msa, err := ReadAlignment(strings.NewReader("aa\naa"))
	if err != nil {
		t.Fatalf("Could not read alignment: %s", err)
	}
	testEqualAlign(t, msa, []string{"aa", "aa"})
}

func TestReadAlignmentErrors(t *testing.T) {
	tests := []string{
		"aaa\naa\n",
		"aaa\n",
		"",
		"aa\na-\n",
	}
	for _, test := range tests {
		if _, err := ReadAlignment(strings.NewReader(test)); err == nil {
			t.Fatalf("Expected an error reading %q.", test)
		}
	}
}

func TestReadFasta(t *testing.T) {
	input := ">one\nARND\n>two\nCQEG\n"
	msa, err := ReadFasta(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Could not read FASTA alignment: %s", err)
	}
	testEqualAlign(t, msa, []string{"arnd", "cqeg"})
	if name := msa.Get(0).Name; name != "one" {
		t.Fatalf("First sequence should be named 'one', got '%s'.", name)
	}
}

func TestProfile(t *testing.T) {
	msa := mustMSA(t, "aar", "aan", "arn")
	fp := msa.Profile()
	if fp.Len() != 3 {
		t.Fatalf("Profile has %d columns but should have 3.", fp.Len())
	}
	a, r, n := Residue('a').Index(), Residue('r').Index(), Residue('n').Index()
	counts := []struct {
		col, residue, count int
	}{
		{0, a, 3}, {0, r, 0},
		{1, a, 2}, {1, r, 1},
		{2, r, 1}, {2, n, 2}, {2, a, 0},
	}
	for _, c := range counts {
		if got := fp.Count(c.col, c.residue); got != c.count {
			t.Errorf("Column %d has %d of residue %c but should have %d.",
				c.col, got, Alpha20[c.residue], c.count)
		}
	}
}

func TestBackground(t *testing.T) {
	msa := mustMSA(t, "aar", "aan", "arn")
	bg := msa.Background()
	answers := map[Residue]float64{
		'a': 5.0 / 9.0,
		'r': 2.0 / 9.0,
		'n': 2.0 / 9.0,
		'w': 0,
		'-': 0,
	}
	for r, answer := range answers {
		if got := bg.Freq(r); math.Abs(got-answer) > 1e-12 {
			t.Errorf("Background frequency of %c is %f but should be %f.",
				r, got, answer)
		}
	}
}

func TestBackgroundSum(t *testing.T) {
	tests := [][]string{
		{"aa", "aa"},
		{"arndcqeghi", "lkmfpstwyv", "aaaaaaaaaa"},
		{"wy", "yw", "vv", "ss"},
	}
	for _, test := range tests {
		sum := mustMSA(t, test...).Background().Sum()
		if math.Abs(sum-1) > 1e-9 {
			t.Fatalf("Background frequencies of %v sum to %f.", test, sum)
		}
	}
}

func TestAlphabetIndex(t *testing.T) {
	if Alpha20.Len() != AlphaSize {
		t.Fatalf("Alpha20 has %d residues.", Alpha20.Len())
	}
	for i, r := range Alpha20 {
		if r.Index() != i {
			t.Fatalf("Residue %c has index %d but should have %d.",
				r, r.Index(), i)
		}
		if j, ok := Alpha20.Index(r); !ok || j != i {
			t.Fatalf("Alpha20.Index(%c) = (%d, %v).", r, j, ok)
		}
	}
	for _, r := range []Residue{'A', 'b', 'x', '-', '.', 0} {
		if r.Index() != -1 {
			t.Fatalf("Residue %q should not be in Alpha20.", r)
		}
	}
}

func testEqualAlign(t *testing.T, computed MSA, answer []string) {
	if computed.NumSeqs() != len(answer) {
		t.Fatalf("\nNumber of entries in MSA differ: %d != %d",
			computed.NumSeqs(), len(answer))
	}
	for i, a := range answer {
		testEqualSeq(t, computed.Get(i).Residues, []Residue(a))
	}
}

func testEqualSeq(t *testing.T, computed, answer []Residue) {
	scomputed := Sequence{Residues: computed}.String()
	sanswer := Sequence{Residues: answer}.String()
	if scomputed != sanswer {
		t.Fatalf("\nComputed sequence is\n\n%s\n\n"+
			"but answer is\n\n%s", scomputed, sanswer)
	}
}

func mustMSA(t *testing.T, rows ...string) MSA {
	msa, err := NewMSA(makeSeqs(rows))
	if err != nil {
		t.Fatalf("Could not build MSA from %v: %s", rows, err)
	}
	return msa
}

func makeSeqs(strs []string) []Sequence {
	seqs := make([]Sequence, len(strs))
	for i, str := range strs {
		seqs[i] = NewSequence(fmt.Sprintf("%d", i), str)
	}
	return seqs
}
