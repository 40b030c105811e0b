package parser

// decimalMark locates the decimal mark in an amount body, returning its
// byte index or -1 when the body has none.
//
// Candidates are '.' or ',' bytes preceded by a digit, scanned from the
// right. A candidate followed by at most two digits, or by four or more,
// is the decimal mark. A candidate followed by exactly three digits is
// ambiguous: when the three-digit group runs to the end of the body it is
// a thousands separator and the scan continues leftward, as in "1,234";
// when the group is terminated by a non-digit the candidate is the mark.
func decimalMark(b []byte) int {
	for i := len(b) - 1; i > 0; i-- {
		c := b[i]
		if c != '.' && c != ',' {
			continue
		}
		if !isDigit(b[i-1]) {
			continue
		}
		run := 0
		for i+1+run < len(b) && isDigit(b[i+1+run]) {
			run++
		}
		if run != 3 || i+1+run < len(b) {
			return i
		}
		// Thousands separator; keep searching leftward.
	}
	return -1
}
