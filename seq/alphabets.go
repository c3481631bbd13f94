package seq

// AlphaSize is the number of residues in Alpha20.
const AlphaSize = 20

type Alphabet []Residue

func NewAlphabet(residues ...Residue) Alphabet {
	return Alphabet(residues)
}

func (a Alphabet) Len() int {
	return len(a)
}

// Index returns the position of r in the alphabet. The second return value
// is false if r is not in the alphabet.
func (a Alphabet) Index(r Residue) (int, bool) {
	for i, residue := range a {
		if residue == r {
			return i, true
		}
	}
	return -1, false
}

// String returns the residues of the alphabet in order.
func (a Alphabet) String() string {
	bs := make([]byte, len(a))
	for i, r := range a {
		bs[i] = byte(r)
	}
	return string(bs)
}

// The twenty standard amino acids in lower case. The position of each
// residue is its row and column index in a substitution matrix.
var Alpha20 = NewAlphabet(
	'a', 'r', 'n', 'd', 'c', 'q', 'e', 'g', 'h', 'i',
	'l', 'k', 'm', 'f', 'p', 's', 't', 'w', 'y', 'v',
)

// alpha20Index maps a residue byte to its index in Alpha20, or -1.
var alpha20Index [256]int8

func init() {
	for i := range alpha20Index {
		alpha20Index[i] = -1
	}
	for i, r := range Alpha20 {
		alpha20Index[r] = int8(i)
	}
}

// Index returns the position of the residue in Alpha20, or -1 if the
// residue is not one of the twenty standard amino acids.
func (r Residue) Index() int {
	return int(alpha20Index[r])
}
