package nw

// Normalize keeps only ASCII letters of seq and upper-cases them, so that
// "acg t\n" and "ACGT" align identically. Digits, whitespace, punctuation
// and existing gap characters are dropped.
func Normalize(seq string) string {
	out := make([]byte, 0, len(seq))
	for k := 0; k < len(seq); k++ {
		c := seq[k]
		switch {
		case 'A' <= c && c <= 'Z':
			out = append(out, c)
		case 'a' <= c && c <= 'z':
			out = append(out, c-'a'+'A')
		}
	}

	return string(out)
}
