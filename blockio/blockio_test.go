package blockio

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	crc "github.com/noxworld-dev/noxcrc"
)

var testKey = []byte("crc-test-key")

func writeSample(t testing.TB, tab *crc.Table, key []byte) ([]byte, uint64) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf, tab, key)
	require.NoError(t, err)
	require.NoError(t, w.WriteU8(0x48))
	require.NoError(t, w.WriteU16(0x6c65))
	require.NoError(t, w.WriteU32(0x11223344))
	require.NoError(t, w.WriteU64(0x0102030405060708))
	_, err = w.Write([]byte("Hello"))
	require.NoError(t, err)
	require.EqualValues(t, 20, w.Written())
	require.NoError(t, w.Flush())
	require.EqualValues(t, 24, w.Written())
	sum := w.Sum()
	require.NoError(t, w.WriteSum())
	require.EqualValues(t, 32, w.Written())
	require.NoError(t, w.Close())
	return buf.Bytes(), sum
}

func TestRoundTrip(t *testing.T) {
	tab := crc.MakeTable(crc.CRC8)
	for _, key := range [][]byte{nil, testKey} {
		data, sum := writeSample(t, tab, key)
		require.Len(t, data, 4*Block)

		r, err := NewReader(bytes.NewReader(data), tab, key)
		require.NoError(t, err)
		u8, err := r.ReadU8()
		require.NoError(t, err)
		require.EqualValues(t, 0x48, u8)
		u16, err := r.ReadU16()
		require.NoError(t, err)
		require.EqualValues(t, 0x6c65, u16)
		u32, err := r.ReadU32()
		require.NoError(t, err)
		require.EqualValues(t, 0x11223344, u32)
		u64, err := r.ReadU64()
		require.NoError(t, err)
		require.EqualValues(t, uint64(0x0102030405060708), u64)
		p := make([]byte, 5)
		_, err = io.ReadFull(r, p)
		require.NoError(t, err)
		require.Equal(t, "Hello", string(p))
		require.Equal(t, 4, r.Buffered())

		require.NoError(t, r.Verify())
		require.Equal(t, sum, r.Sum())

		_, err = r.ReadU8()
		require.Equal(t, io.EOF, err)
	}
}

func TestPlainChecksumCoversPadding(t *testing.T) {
	tab := crc.MakeTable(crc.CRC8)
	data, sum := writeSample(t, tab, nil)
	// Without a key the payload is stored as is.
	require.Equal(t, crc.CRC8.Checksum(data[:3*Block]), sum)
	require.EqualValues(t, sum, data[3*Block])
}

func TestEncrypted(t *testing.T) {
	tab := crc.MakeTable(crc.CRC8Maxim)
	plain, _ := writeSample(t, tab, nil)
	enc, _ := writeSample(t, tab, testKey)
	require.NotEqual(t, plain, enc)

	r, err := NewReader(bytes.NewReader(enc), tab, []byte("wrong-key"))
	require.NoError(t, err)
	_, err = io.ReadFull(r, make([]byte, 3*Block))
	require.NoError(t, err)
	require.ErrorIs(t, r.Verify(), ErrChecksum)
}

func TestTamperDetected(t *testing.T) {
	tab := crc.MakeTable(crc.MustNew(crc.Params{Width: 32, Poly: 0x04c11db7, Init: 0xffffffff, RefIn: true, RefOut: true, XorOut: 0xffffffff}))
	for _, key := range [][]byte{nil, testKey} {
		data, _ := writeSample(t, tab, key)
		for i := 0; i < 3*Block; i++ {
			mod := append([]byte(nil), data...)
			mod[i] ^= 0x10
			r, err := NewReader(bytes.NewReader(mod), tab, key)
			require.NoError(t, err)
			_, err = io.ReadFull(r, make([]byte, 3*Block))
			require.NoError(t, err)
			require.ErrorIs(t, r.Verify(), ErrChecksum, "byte %d", i)
		}
	}
}

func TestVerifyTruncated(t *testing.T) {
	tab := crc.MakeTable(crc.CRC8)
	data, _ := writeSample(t, tab, nil)
	r, err := NewReader(bytes.NewReader(data[:3*Block]), tab, nil)
	require.NoError(t, err)
	_, err = io.ReadFull(r, make([]byte, 3*Block))
	require.NoError(t, err)
	require.Equal(t, io.ErrUnexpectedEOF, r.Verify())
}

func TestResetCRC(t *testing.T) {
	tab := crc.MakeTable(crc.CRC8)
	var buf bytes.Buffer
	w, err := NewWriter(&buf, tab, nil)
	require.NoError(t, err)
	for _, s := range []string{"first", "second"} {
		_, err = w.Write([]byte(s))
		require.NoError(t, err)
		require.NoError(t, w.WriteSum())
		w.ResetCRC()
	}

	r, err := NewReader(bytes.NewReader(buf.Bytes()), tab, nil)
	require.NoError(t, err)
	for _, s := range []string{"first", "second"} {
		p := make([]byte, len(s))
		_, err = io.ReadFull(r, p)
		require.NoError(t, err)
		require.Equal(t, s, string(p))
		require.NoError(t, r.Verify())
		r.ResetCRC()
	}
}

func TestNilTable(t *testing.T) {
	_, err := NewWriter(io.Discard, nil, nil)
	require.Error(t, err)
	_, err = NewReader(bytes.NewReader(nil), nil, nil)
	require.Error(t, err)
}
