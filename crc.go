package crc

import "math/bits"

// Init returns the register value a computation starts from.
func (m *Model) Init() uint64 {
	return m.p.Init
}

// Update returns the register after processing p, starting from crc.
// The result is the raw register; pass it to Finalize to get a checksum.
func (m *Model) Update(crc uint64, p []byte) uint64 {
	return m.update(crc, p, nil)
}

// Finalize applies output reflection and the final XOR mask to a register.
func (m *Model) Finalize(crc uint64) uint64 {
	crc &= m.mask
	if m.p.RefOut {
		crc = m.reflect(crc)
	}
	return crc ^ m.p.XorOut
}

// Checksum returns the CRC of p.
func (m *Model) Checksum(p []byte) uint64 {
	return m.Finalize(m.update(m.p.Init, p, nil))
}

// Checksum returns the CRC of data using model m.
func Checksum(data []byte, m *Model) uint64 {
	return m.Checksum(data)
}

func (m *Model) update(crc uint64, p []byte, fn TraceFunc) uint64 {
	crc &= m.mask
	for i, v := range p {
		if m.p.RefIn {
			v = bits.Reverse8(v)
		}
		crc ^= uint64(v) << m.shift
		crc = m.reduce(crc, i, fn)
	}
	return crc
}

// reduce runs the eight shift-and-divide rounds for one input byte that was
// already combined into the top byte of crc.
func (m *Model) reduce(crc uint64, idx int, fn TraceFunc) uint64 {
	for j := 0; j < 8; j++ {
		prev := crc
		msb := crc&m.top != 0
		crc = (crc << 1) & m.mask
		if msb {
			crc ^= m.p.Poly
		}
		if fn != nil {
			fn(Step{Index: idx, Bit: j, Before: prev, After: crc, MSB: msb})
		}
	}
	return crc
}

func (m *Model) reflect(v uint64) uint64 {
	return bits.Reverse64(v) >> (64 - m.p.Width)
}
