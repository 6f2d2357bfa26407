package assemble

import "fmt"

// AssignNames gives each page a file name of the form
// "<base><sep><page-index><sep2>N].<ext>": a base name shared by every
// page of one atlas, a page-index suffix once there is more than one
// page, and an "N" collision suffix when `exists` (e.g. a prior pack's
// leftover file, or another atlas sharing the base) already claims
// that name. Each suffix is joined with a "-" only when what precedes
// it already ends in a digit; otherwise the number is appended
// directly, since it stays unambiguous on its own.
func AssignNames(baseName, ext string, count int, exists func(name string) bool) []string {
	names := make([]string, count)
	for i := 0; i < count; i++ {
		stem := baseName
		if count > 1 {
			stem = withSuffix(baseName, i+1)
		}

		name := stem + "." + ext
		for n := 2; exists != nil && exists(name); n++ {
			name = withSuffix(stem, n) + "." + ext
		}
		names[i] = name
	}
	return names
}

// withSuffix appends n onto base, separating with "-" only when base
// ends in a digit (covering the "...xDIGIT" scale-suffix case too,
// since its last character is itself a digit); a non-digit-ending base
// gets the number concatenated directly.
func withSuffix(base string, n int) string {
	if endsInDigit(base) {
		return fmt.Sprintf("%s-%d", base, n)
	}
	return fmt.Sprintf("%s%d", base, n)
}

func endsInDigit(s string) bool {
	if s == "" {
		return false
	}
	last := s[len(s)-1]
	return last >= '0' && last <= '9'
}
