package crc

// Sum8 returns the sum of all bytes modulo 256.
//
// Unlike a CRC it does not depend on byte order, so swapped bytes go
// unnoticed.
func Sum8(p []byte) byte {
	var s byte
	for _, v := range p {
		s += v
	}
	return s
}

// XOR8 returns all bytes XORed together. Like Sum8 it is order-blind, and
// it misses any pair of errors in the same bit position.
func XOR8(p []byte) byte {
	var s byte
	for _, v := range p {
		s ^= v
	}
	return s
}
