// Package blockio implements a block-aligned byte stream protected by a
// running CRC and optionally encrypted with Blowfish.
//
// Data is written in Block sized chunks. Every plaintext block, including
// zero padding added by Flush, is fed into the CRC. Writer.WriteSum appends a
// trailer block with the checksum which Reader.Verify checks.
package blockio

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/blowfish"
)

// Block is the size of a single stream block.
const Block = blowfish.BlockSize

var (
	// ErrChecksum is returned by Reader.Verify when the stored checksum does
	// not match the data.
	ErrChecksum = errors.New("blockio: checksum mismatch")

	errNoTable = errors.New("blockio: nil CRC table")
)

// NewCipher creates a Blowfish cipher for the key. An empty key disables
// encryption and returns a nil cipher.
func NewCipher(key []byte) (*blowfish.Cipher, error) {
	if len(key) == 0 {
		return nil, nil
	}
	c, err := blowfish.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("blockio: %w", err)
	}
	return c, nil
}
