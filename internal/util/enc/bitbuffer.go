package enc

// bitBuffer regroups a stream of fixed-width values into values of another width. New values are
// shifted in from the right, output is taken from the left-most pending bits. It never holds more
// than bits(symbol) + 7 pending bits, so the high bits that fall off the end of value are always
// already consumed.
type bitBuffer struct {
	value uint32
	bits  uint
}

// push appends the low `width` bits of v.
func (b *bitBuffer) push(v uint32, width uint) {
	b.value = b.value<<width | v&mask(width)
	b.bits += width
}

// pop removes and returns the oldest `width` pending bits. Callers must make sure that at least
// `width` bits are pending.
func (b *bitBuffer) pop(width uint) uint32 {
	b.bits -= width
	return (b.value >> b.bits) & mask(width)
}

// flush returns the remaining (fewer than `width`) bits left-aligned in a `width`-wide value, with
// the missing low bits set to zero, and empties the buffer.
func (b *bitBuffer) flush(width uint) uint32 {
	v := (b.value << (width - b.bits)) & mask(width)
	b.value, b.bits = 0, 0
	return v
}

func mask(width uint) uint32 {
	return 1<<width - 1
}
