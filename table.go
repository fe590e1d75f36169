package crc

import "math/bits"

// Size is the number of entries in a Table.
const Size = 256

// Table is a lookup table for a Model, processing one byte per lookup.
// It is immutable and safe for concurrent use.
type Table struct {
	m *Model
	t [Size]uint64
}

// MakeTable builds the lookup table for m.
func MakeTable(m *Model) *Table {
	t := &Table{m: m}
	for i := range t.t {
		t.t[i] = m.reduce(uint64(i)<<m.shift, i, nil)
	}
	return t
}

// Model returns the model the table was built for.
func (t *Table) Model() *Model {
	return t.m
}

// Entry returns the table value for byte b.
func (t *Table) Entry(b byte) uint64 {
	return t.t[b]
}

// Update is the table equivalent of Model.Update.
func (t *Table) Update(crc uint64, p []byte) uint64 {
	m := t.m
	crc &= m.mask
	for _, v := range p {
		if m.p.RefIn {
			v = bits.Reverse8(v)
		}
		crc = t.t[byte(crc>>m.shift)^v] ^ (crc<<8)&m.mask
	}
	return crc
}

// Checksum returns the CRC of p. It always equals t.Model().Checksum(p).
func (t *Table) Checksum(p []byte) uint64 {
	return t.m.Finalize(t.Update(t.m.p.Init, p))
}
