package swap

// recordLayout is an explicit offset table for a fixed-size record: one entry
// per field, in storage order. Pack and unpack both address fields through
// the table, so the two directions cannot disagree about where a field
// lives, and the layout itself is testable.
type layoutField struct {
	name   string
	offset int
	size   int
}

type recordLayout []layoutField

// slice returns the byte range of the named field. The name must be one of
// the table's entries; anything else is a bug in this package.
func (l recordLayout) slice(b []byte, name string) []byte {
	for _, f := range l {
		if f.name == name {
			return b[f.offset : f.offset+f.size]
		}
	}
	panic("swap: unknown layout field " + name)
}

// size returns the record length implied by the table.
func (l recordLayout) size() int {
	last := l[len(l)-1]
	return last.offset + last.size
}

// contiguous reports whether the fields tile the record without gaps or
// overlaps.
func (l recordLayout) contiguous() bool {
	next := 0
	for _, f := range l {
		if f.offset != next {
			return false
		}
		next = f.offset + f.size
	}
	return true
}
