/*
Package submat builds log-odds substitution matrices (in the style of BLOSUM)
from a multiple sequence alignment.

For every ordered pair of residues (a, b) in seq.Alpha20, the number of times
a and b occur together in the same alignment column is counted. A column with
k copies of a contributes k*(k-1)/2 pairs of (a, a). A column with ka copies
of a and kb copies of b contributes ka*kb pairs of (a, b). The count is turned
into a probability by dividing by the number of pairs an alignment of N
sequences and length L can have, which is L*N*(N-1)/2.

The score of a cell is then

	round(scale * log10(p(a, b) / (bg(a) * bg(b))))

where bg is the background frequency of a residue in the whole alignment and
round rounds halves away from zero. Cells where p(a, b), bg(a) or bg(b) is
zero have a score of 0.

Matrices are symmetric: p(a, b) == p(b, a) and bg(a)*bg(b) == bg(b)*bg(a).
*/
package submat
