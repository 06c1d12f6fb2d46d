package bitfield

import "math"

func lowMask(nbits uint) uint32 {
	if nbits == 0 {
		return 0
	}
	return ^uint32(0) >> (slotBits - nbits)
}

// maskMerge takes bits from w where mask is set and from v elsewhere.
func maskMerge(w, v, mask uint32) uint32 {
	return v ^ ((w ^ v) & mask)
}

// readSlot reads the 32-bit window whose least significant bit sits at
// index. The window may straddle two adjacent slots; bits past the end of
// the storage read as zero.
func (b *BitField) readSlot(index uint) uint32 {
	slot := index >> slotShift
	of := index & slotMask
	v := b.field[slot] >> of
	taken := slotBits - of
	if of != 0 && index+taken < b.size {
		v |= b.field[slot+1] << taken
	}
	return v
}

// writeSlot writes a 32-bit window at index. Bits of the first slot below
// the window and bits of the second slot above it are preserved; when the
// window would extend past the last slot the excess bits are dropped.
func (b *BitField) writeSlot(index uint, value uint32) {
	slot := index >> slotShift
	of := index & slotMask
	if of == 0 {
		b.field[slot] = value
		return
	}
	mask := lowMask(of)
	b.field[slot] = value<<of | b.field[slot]&mask
	if slot+1 < b.nslots {
		b.field[slot+1] = value>>(slotBits-of) | b.field[slot+1]&^mask
	}
}

// ReadUintN reads an unsigned value of xbits bits starting at index. The
// result is right-aligned. xbits outside [1,32] reads as 0.
func (b *BitField) ReadUintN(index, xbits uint) uint32 {
	switch {
	case xbits == 0 || xbits > slotBits:
		return 0
	case xbits == 1:
		return b.ReadBit(index)
	case xbits == slotBits:
		return b.readSlot(index)
	default:
		return b.readSlot(index) & lowMask(xbits)
	}
}

// WriteUintN writes the low xbits bits of value starting at index. Bits
// outside [index, index+xbits) are never disturbed. xbits outside [1,32]
// does nothing.
func (b *BitField) WriteUintN(index uint, value uint32, xbits uint) {
	switch {
	case xbits == 0 || xbits > slotBits:
	case xbits == 1:
		b.WriteBit(index, uint32(uint8(value)))
	case xbits == slotBits:
		b.writeSlot(index, value)
	default:
		w := b.readSlot(index)
		value &= lowMask(xbits)
		b.writeSlot(index, maskMerge(w, value, ^uint32(0)<<xbits))
	}
}

// ReadFloat reinterprets the 32-bit window at index as an IEEE-754
// single-precision value. The raw bit pattern is taken as is, there is no
// numeric conversion.
func (b *BitField) ReadFloat(index uint) float32 {
	return math.Float32frombits(b.readSlot(index))
}

// WriteFloat stores the raw bit pattern of value at index.
func (b *BitField) WriteFloat(index uint, value float32) {
	b.writeSlot(index, math.Float32bits(value))
}
