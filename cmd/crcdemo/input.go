package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

type InputFlags struct {
	Hex  bool `xor:"source" help:"Inputs are hex encoded bytes, like '01 02' or '0x41,0x42'"`
	File bool `xor:"source" help:"Inputs are file names"`
}

type input struct {
	label string
	data  []byte
}

func (f InputFlags) load(args []string, stdin io.Reader) ([]input, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, err
		}
		if f.Hex {
			if data, err = parseHex(string(data)); err != nil {
				return nil, err
			}
		}
		return []input{{label: "-", data: data}}, nil
	}
	out := make([]input, 0, len(args))
	for _, arg := range args {
		in, err := f.loadOne(arg)
		if err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, nil
}

func (f InputFlags) loadOne(arg string) (input, error) {
	switch {
	case f.File:
		data, err := os.ReadFile(arg)
		if err != nil {
			return input{}, err
		}
		return input{label: arg, data: data}, nil
	case f.Hex:
		data, err := parseHex(arg)
		if err != nil {
			return input{}, err
		}
		return input{label: arg, data: data}, nil
	}
	return input{label: strconv.Quote(arg), data: []byte(arg)}, nil
}

// parseHex accepts bytes separated by spaces or commas, each optionally
// prefixed with 0x, as well as a plain run of hex digits.
func parseHex(s string) ([]byte, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\n' || r == '\t' || r == '\r'
	})
	var out []byte
	for _, f := range fields {
		f = strings.TrimPrefix(strings.TrimPrefix(f, "0x"), "0X")
		if len(f)%2 == 1 {
			f = "0" + f
		}
		b, err := hex.DecodeString(f)
		if err != nil {
			return nil, fmt.Errorf("invalid hex %q: %w", f, err)
		}
		out = append(out, b...)
	}
	return out, nil
}
