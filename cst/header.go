package cst

// AppendCollapsedHeader appends a transaction header to dst with runs of
// spaces and tabs collapsed to a single space. Periodic headers keep the
// first double space intact, since it separates the period expression
// from the description.
func AppendCollapsedHeader(dst, header []byte) []byte {
	keepDouble := len(header) > 0 && header[0] == '~'
	i := 0
	for i < len(header) {
		c := header[i]
		if c != ' ' && c != '\t' {
			dst = append(dst, c)
			i++
			continue
		}
		run := i
		for i < len(header) && (header[i] == ' ' || header[i] == '\t') {
			i++
		}
		if keepDouble && i-run >= 2 {
			dst = append(dst, ' ', ' ')
			keepDouble = false
			continue
		}
		dst = append(dst, ' ')
	}
	return dst
}

// CollapsedHeaderWidth returns the width of a header after space
// collapsing, matching AppendCollapsedHeader.
func CollapsedHeaderWidth(header []byte) int {
	keepDouble := len(header) > 0 && header[0] == '~'
	w := 0
	i := 0
	for i < len(header) {
		c := header[i]
		if c != ' ' && c != '\t' {
			if c&0xC0 != 0x80 {
				w++
			}
			i++
			continue
		}
		run := i
		for i < len(header) && (header[i] == ' ' || header[i] == '\t') {
			i++
		}
		if keepDouble && i-run >= 2 {
			w += 2
			keepDouble = false
			continue
		}
		w++
	}
	return w
}

// PostingCommentColumn returns the 0-indexed column where posting
// comments of a transaction start: the indent, the account name column,
// the value segment columns present in the transaction and a spacing gap
// after each.
func PostingCommentColumn(t *Transaction, spacing int) int {
	col := int(t.PostingIndent) + int(t.MaxNameWidth) + spacing + t.Amount.BodyWidth()
	if !t.Eq.IsZero() {
		col += spacing + int(t.Eq.Op) + 1 + t.Eq.BodyWidth()
	}
	if !t.At.IsZero() {
		col += spacing + int(t.At.Op) + 1 + t.At.BodyWidth()
	}
	return col + spacing
}
