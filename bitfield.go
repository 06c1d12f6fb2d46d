// Package bitfield implements a fixed-capacity bit-addressable view over
// caller-owned storage. A BitField borrows a slice of 32-bit slots supplied
// by the caller and exposes single-bit, n-bit and float accessors at
// arbitrary bit offsets, spanning slot boundaries transparently. The package
// never allocates, grows or releases the storage.
package bitfield

const (
	slotShift = 5
	slotBits  = 1 << slotShift
	slotMask  = slotBits - 1
)

type BitField struct {
	field  []uint32
	size   uint // capacity in bits
	nslots uint
}

// Size returns the backing size in bytes required to hold nbits bits,
// rounded up to whole slots. nbits must be at least 1.
func Size(nbits uint) uint {
	return 4 * (((nbits - 1) >> slotShift) + 1)
}

// Slots returns the number of 32-bit slots required to hold nbits bits.
func Slots(nbits uint) uint {
	return Size(nbits) / 4
}

// Setup binds the bitfield to area. The storage is borrowed, not copied:
// the caller keeps ownership and must keep it alive for as long as the
// bitfield is in use. The memory is not zeroed.
func (b *BitField) Setup(area []uint32) {
	b.field = area
	b.size = uint(len(area)) << slotShift
	b.nslots = uint(len(area))
}

func New(area []uint32) *BitField {
	b := &BitField{}
	b.Setup(area)
	return b
}

// Len returns capacity in bits
func (b *BitField) Len() uint {
	return b.size
}

func (b *BitField) ReadBit(index uint) uint32 {
	if index >= b.size {
		panic("bit index out of bounds")
	}
	return (b.field[index>>slotShift] >> (index & slotMask)) & 1
}

func (b *BitField) SetBit(index uint) {
	if index >= b.size {
		panic("bit index out of bounds")
	}
	b.field[index>>slotShift] |= 1 << (index & slotMask)
}

func (b *BitField) ClearBit(index uint) {
	if index >= b.size {
		panic("bit index out of bounds")
	}
	b.field[index>>slotShift] &= ^(uint32(1) << (index & slotMask))
}

func (b *BitField) ToggleBit(index uint) {
	if index >= b.size {
		panic("bit index out of bounds")
	}
	b.field[index>>slotShift] ^= 1 << (index & slotMask)
}

// WriteBit sets the bit at index when value is nonzero, else clears it.
func (b *BitField) WriteBit(index uint, value uint32) {
	if value != 0 {
		b.SetBit(index)
	} else {
		b.ClearBit(index)
	}
}

// reset all bits to 0
func (b *BitField) Clear() {
	for i := range b.field {
		b.field[i] = 0
	}
}

// Dump copies the first n bytes of the storage into dst and returns dst.
// Slots are serialized low byte first, the order of the logical bit stream.
// Returns nil when n exceeds the storage size; dst is left untouched.
func (b *BitField) Dump(dst []byte, n uint) []byte {
	if n > b.size/8 {
		return nil
	}
	var v uint32
	var rem uint
	for i := uint(0); i < n; i++ {
		if rem == 0 {
			v = b.field[i>>2]
			rem = 4
		}
		dst[i] = byte(v)
		v >>= 8
		rem--
	}
	return dst
}
