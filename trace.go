package crc

// Step is a single shift round of the bitwise algorithm.
type Step struct {
	// Index of the input byte within the traced slice.
	Index int
	// Bit is the round number within the byte, 0 to 7.
	Bit int
	// Before is the register entering the round. For Bit 0 the input byte
	// is already XORed in.
	Before uint64
	After  uint64
	// MSB reports whether the top register bit was set, which is when the
	// polynomial gets XORed in.
	MSB bool
}

// TraceFunc observes the steps of a computation.
type TraceFunc func(s Step)

// Trace computes the CRC of p exactly like Checksum, calling fn after every
// round. A nil fn is allowed.
func (m *Model) Trace(p []byte, fn TraceFunc) uint64 {
	return m.Finalize(m.update(m.p.Init, p, fn))
}
