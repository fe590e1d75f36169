// Package crc implements a parameterized cyclic redundancy check over byte
// sequences.
//
// A CRC is described by Params (width, polynomial, initial value, reflection
// flags and final XOR mask). Params are validated once by New, which returns
// an immutable Model. The Model computes checksums bit by bit; MakeTable
// derives a 256-entry lookup table for the same Model that always produces
// identical results.
package crc

import (
	"errors"
	"fmt"
)

// ErrInvalidParams is returned by New for parameters the engine cannot
// compute with.
var ErrInvalidParams = errors.New("crc: invalid parameters")

const (
	// MinWidth is the smallest supported register width in bits.
	MinWidth = 8
	// MaxWidth is the largest supported register width in bits.
	MaxWidth = 64
)

// Params describes a CRC algorithm.
//
// Poly holds the generator polynomial without its leading term, MSB-first.
// For example x^8 + x^2 + x + 1 is 0x07.
type Params struct {
	Name   string `json:"name,omitempty"`
	Width  uint   `json:"width"`
	Poly   uint64 `json:"poly"`
	Init   uint64 `json:"init"`
	RefIn  bool   `json:"refin"`
	RefOut bool   `json:"refout"`
	XorOut uint64 `json:"xorout"`
}

func (p Params) String() string {
	name := p.Name
	if name == "" {
		name = "custom"
	}
	digits := int(p.Width+3) / 4
	return fmt.Sprintf("%s width=%d poly=0x%0*x init=0x%0*x refin=%t refout=%t xorout=0x%0*x",
		name, p.Width, digits, p.Poly, digits, p.Init, p.RefIn, p.RefOut, digits, p.XorOut)
}

func (p Params) validate() error {
	if p.Width < MinWidth || p.Width > MaxWidth {
		return fmt.Errorf("%w: width %d is outside [%d, %d]", ErrInvalidParams, p.Width, MinWidth, MaxWidth)
	}
	mask := widthMask(p.Width)
	if p.Poly == 0 {
		return fmt.Errorf("%w: zero polynomial", ErrInvalidParams)
	}
	if p.Poly&^mask != 0 {
		return fmt.Errorf("%w: polynomial 0x%x does not fit in %d bits", ErrInvalidParams, p.Poly, p.Width)
	}
	if p.Init&^mask != 0 {
		return fmt.Errorf("%w: initial value 0x%x does not fit in %d bits", ErrInvalidParams, p.Init, p.Width)
	}
	if p.XorOut&^mask != 0 {
		return fmt.Errorf("%w: final xor 0x%x does not fit in %d bits", ErrInvalidParams, p.XorOut, p.Width)
	}
	return nil
}

func widthMask(w uint) uint64 {
	if w >= 64 {
		return ^uint64(0)
	}
	return 1<<w - 1
}

// Model is a validated CRC algorithm. It is immutable and safe for
// concurrent use.
type Model struct {
	p     Params
	mask  uint64
	top   uint64
	shift uint
}

// New validates p and returns a Model computing it.
func New(p Params) (*Model, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return &Model{
		p:     p,
		mask:  widthMask(p.Width),
		top:   1 << (p.Width - 1),
		shift: p.Width - 8,
	}, nil
}

// MustNew is like New but panics on invalid parameters.
func MustNew(p Params) *Model {
	m, err := New(p)
	if err != nil {
		panic(err)
	}
	return m
}

// Params returns a copy of the model parameters.
func (m *Model) Params() Params {
	return m.p
}

// Width returns the register width in bits.
func (m *Model) Width() uint {
	return m.p.Width
}

// Mask returns a value with the low Width bits set.
func (m *Model) Mask() uint64 {
	return m.mask
}

func (m *Model) String() string {
	return m.p.String()
}
