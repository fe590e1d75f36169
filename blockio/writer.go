package blockio

import (
	"encoding/binary"
	"io"

	"golang.org/x/crypto/blowfish"

	crc "github.com/noxworld-dev/noxcrc"
)

// NewWriter creates a Writer computing the CRC with tab. A non-empty key
// enables encryption.
func NewWriter(w io.Writer, tab *crc.Table, key []byte) (*Writer, error) {
	if tab == nil {
		return nil, errNoTable
	}
	c, err := NewCipher(key)
	if err != nil {
		return nil, err
	}
	wr := &Writer{c: c, tab: tab}
	wr.Reset(w)
	return wr, nil
}

// Writer buffers data into blocks. It is not safe for concurrent use.
type Writer struct {
	w   io.Writer
	c   *blowfish.Cipher
	tab *crc.Table
	buf [Block]byte
	n   int
	off int64
	crc uint64
}

// Reset internal state and assign a new underlying writer to it.
func (w *Writer) Reset(d io.Writer) {
	w.w = d
	w.n = 0
	w.off = 0
	w.ResetCRC()
}

// ResetCRC restarts the checksum from the model's initial value.
func (w *Writer) ResetCRC() {
	w.crc = w.tab.Model().Init()
}

// Sum returns the checksum of all blocks flushed so far.
func (w *Writer) Sum() uint64 {
	return w.tab.Model().Finalize(w.crc)
}

// Written returns a number of bytes accepted by Write, including padding
// added by Flush.
func (w *Writer) Written() int64 {
	return w.off
}

func (w *Writer) flush() error {
	w.crc = w.tab.Update(w.crc, w.buf[:])
	dst := w.buf
	if w.c != nil {
		w.c.Encrypt(dst[:], w.buf[:])
	}
	_, err := w.w.Write(dst[:])
	w.off += int64(Block - w.n)
	w.n = 0
	w.buf = [Block]byte{}
	return err
}

// Flush buffered data to the underlying writer, padding the last block with
// zeros.
func (w *Writer) Flush() error {
	if w.n == 0 {
		return nil
	}
	return w.flush()
}

// Close flushes the data. See Flush.
func (w *Writer) Close() error {
	return w.Flush()
}

func (w *Writer) write(p []byte) (int, error) {
	n := copy(w.buf[w.n:], p)
	w.n += n
	w.off += int64(n)
	if w.n == len(w.buf) {
		if err := w.flush(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (int, error) {
	total := 0
	for len(p) > 0 {
		n, err := w.write(p)
		total += n
		if err != nil {
			return total, err
		}
		p = p[n:]
	}
	return total, nil
}

func (w *Writer) WriteU8(v byte) error {
	_, err := w.Write([]byte{v})
	return err
}

func (w *Writer) WriteU16(v uint16) error {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func (w *Writer) WriteU32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := w.Write(b[:])
	return err
}

func (w *Writer) WriteU64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := w.Write(b[:])
	return err
}

// WriteSum flushes the data and appends a trailer block holding Sum.
// The trailer itself is not part of the checksum. Call ResetCRC to start
// a new checksummed section.
func (w *Writer) WriteSum() error {
	if err := w.Flush(); err != nil {
		return err
	}
	var blk [Block]byte
	binary.LittleEndian.PutUint64(blk[:], w.Sum())
	if w.c != nil {
		w.c.Encrypt(blk[:], blk[:])
	}
	_, err := w.w.Write(blk[:])
	w.off += Block
	return err
}
