package matrix

import "fmt"

// SBS96Contexts returns the 96 single-base-substitution trinucleotide
// contexts in canonical COSMIC order: substitutions grouped C>A, C>G, C>T,
// T>A, T>C, T>G, with the 5' flank cycling A, C, G, T outermost and the 3'
// flank innermost (A[C>A]A, A[C>A]C, ..., T[T>G]T).
func SBS96Contexts() []string {
	subs := [...][2]byte{{'C', 'A'}, {'C', 'G'}, {'C', 'T'}, {'T', 'A'}, {'T', 'C'}, {'T', 'G'}}
	bases := [...]byte{'A', 'C', 'G', 'T'}
	out := make([]string, 0, 96)
	for _, s := range subs {
		for _, five := range bases {
			for _, three := range bases {
				out = append(out, fmt.Sprintf("%c[%c>%c]%c", five, s[0], s[1], three))
			}
		}
	}
	return out
}

// IsSBS96 reports whether the matrix row labels are exactly the canonical
// SBS96 contexts, in order.
func IsSBS96(m *Matrix) bool {
	want := SBS96Contexts()
	if len(m.RowLabels) != len(want) {
		return false
	}
	for i, label := range m.RowLabels {
		if label != want[i] {
			return false
		}
	}
	return true
}
