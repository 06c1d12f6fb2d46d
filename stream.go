package bitfield

//
// Sequential cursor over a BitField
//

type Stream struct {
	f   *BitField
	pos uint
}

func NewStream(f *BitField) *Stream {
	return &Stream{f: f}
}

func (s *Stream) Pos() uint {
	return s.pos
}

func (s *Stream) Len() uint {
	return s.f.size
}

func (s *Stream) Rewind() {
	s.pos = 0
}

// SetPos moves the cursor. The underlying field cannot grow, so positions
// past the end clamp to the capacity.
func (s *Stream) SetPos(newPos uint) {
	if newPos > s.f.size {
		newPos = s.f.size
	}
	s.pos = newPos
}

func (s *Stream) Skip(n uint) {
	s.SetPos(s.pos + n)
}

// Read reads up to n bits at the cursor, clamped to the remaining
// capacity. Returns the value and the number of bits actually read.
func (s *Stream) Read(n uint) (uint32, uint) {
	if n > slotBits {
		panic("too many bits to read")
	}
	if s.pos+n > s.f.size {
		n = s.f.size - s.pos
	}
	if n == 0 {
		return 0, 0
	}
	v := s.f.ReadUintN(s.pos, n)
	s.pos += n
	return v, n
}

// Write writes the low n bits of bits at the cursor, clamped to the
// remaining capacity. Returns the number of bits actually written.
func (s *Stream) Write(n uint, bits uint32) uint {
	if n > slotBits {
		panic("too many bits to write")
	}
	if s.pos+n > s.f.size {
		n = s.f.size - s.pos
	}
	if n == 0 {
		return 0
	}
	s.f.WriteUintN(s.pos, bits, n)
	s.pos += n
	return n
}
