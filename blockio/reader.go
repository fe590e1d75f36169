package blockio

import (
	"encoding/binary"
	"fmt"
	"io"

	"golang.org/x/crypto/blowfish"

	crc "github.com/noxworld-dev/noxcrc"
)

// NewReader creates a decoder for a stream produced by a Writer with the same
// table and key.
func NewReader(r io.Reader, tab *crc.Table, key []byte) (*Reader, error) {
	if tab == nil {
		return nil, errNoTable
	}
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	rd := &Reader{c: c, tab: tab}
	rd.Reset(r)
	return rd, nil
}

// Reader decodes blocks and checksums them as they are read. It is not safe
// for concurrent use.
type Reader struct {
	r   io.Reader
	c   *blowfish.Cipher
	tab *crc.Table
	buf [Block]byte
	i   int
	crc uint64
}

func (r *Reader) Reset(s io.Reader) {
	r.r = s
	r.i = -1
	r.ResetCRC()
}

// ResetCRC restarts the checksum from the model's initial value.
func (r *Reader) ResetCRC() {
	r.crc = r.tab.Model().Init()
}

// Sum returns the checksum of all blocks fetched so far, including the
// unread part of the current block.
func (r *Reader) Sum() uint64 {
	return r.tab.Model().Finalize(r.crc)
}

// Buffered returns the number of unread bytes in the current block.
func (r *Reader) Buffered() int {
	if r.i < 0 || r.i >= Block {
		return 0
	}
	return Block - r.i
}

func (r *Reader) fetch() error {
	_, err := io.ReadFull(r.r, r.buf[:])
	if err != nil {
		return err
	}
	if r.c != nil {
		r.c.Decrypt(r.buf[:], r.buf[:])
	}
	return nil
}

func (r *Reader) readNext() error {
	if err := r.fetch(); err != nil {
		return err
	}
	r.i = 0
	r.crc = r.tab.Update(r.crc, r.buf[:])
	return nil
}

func (r *Reader) read(p []byte) (int, error) {
	if r.i < 0 || r.i >= Block {
		if err := r.readNext(); err != nil {
			return 0, err
		}
	}
	n := copy(p, r.buf[r.i:])
	r.i += n
	return n, nil
}

func (r *Reader) Read(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := r.read(p)
		total += n
		if err != nil {
			return total, err
		}
		p = p[n:]
	}
	return total, nil
}

func (r *Reader) ReadU8() (byte, error) {
	var b [1]byte
	_, err := r.Read(b[:])
	return b[0], err
}

func (r *Reader) ReadU16() (uint16, error) {
	var b [2]byte
	_, err := r.Read(b[:])
	return binary.LittleEndian.Uint16(b[:]), err
}

func (r *Reader) ReadU32() (uint32, error) {
	var b [4]byte
	_, err := r.Read(b[:])
	return binary.LittleEndian.Uint32(b[:]), err
}

func (r *Reader) ReadU64() (uint64, error) {
	var b [8]byte
	_, err := r.Read(b[:])
	return binary.LittleEndian.Uint64(b[:]), err
}

// Align discards the rest of the current block, so the next read starts at a
// block boundary. Discarded bytes stay in the checksum.
func (r *Reader) Align() {
	r.i = -1
}

// Verify aligns the stream, reads the trailer block written by
// Writer.WriteSum and compares it with Sum.
func (r *Reader) Verify() error {
	r.Align()
	want := r.Sum()
	if err := r.fetch(); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return err
	}
	got := binary.LittleEndian.Uint64(r.buf[:])
	if got != want {
		return fmt.Errorf("%w: stored 0x%x, computed 0x%x", ErrChecksum, got, want)
	}
	return nil
}
