package crc

import "strings"

// CheckInput is the conventional input used to publish CRC check values.
const CheckInput = "123456789"

var (
	// CRC8 uses x^8 + x^2 + x + 1 with a zero initial value and no
	// reflection. Also known as CRC-8/SMBUS or the ATM HEC polynomial.
	CRC8 = MustNew(Params{Name: "CRC-8", Width: 8, Poly: 0x07})

	// CRC8Maxim is the 1-Wire CRC used by Dallas/Maxim devices.
	CRC8Maxim = MustNew(Params{Name: "CRC-8/MAXIM-DOW", Width: 8, Poly: 0x31, RefIn: true, RefOut: true})

	// CRC8NRSC5 is the CRC-8 found in Sensirion and TI sensor frames.
	CRC8NRSC5 = MustNew(Params{Name: "CRC-8/NRSC-5", Width: 8, Poly: 0x31, Init: 0xff})

	// CRC8AUTOSAR is the CRC-8 of the AUTOSAR E2E profiles.
	CRC8AUTOSAR = MustNew(Params{Name: "CRC-8/AUTOSAR", Width: 8, Poly: 0x2f, Init: 0xff, XorOut: 0xff})
)

var presets = []*Model{CRC8, CRC8Maxim, CRC8NRSC5, CRC8AUTOSAR}

// Presets returns the built-in models.
func Presets() []*Model {
	out := make([]*Model, len(presets))
	copy(out, presets)
	return out
}

// Lookup finds a built-in model by name, ignoring case.
func Lookup(name string) (*Model, bool) {
	for _, m := range presets {
		if strings.EqualFold(m.p.Name, name) {
			return m, true
		}
	}
	return nil, false
}
