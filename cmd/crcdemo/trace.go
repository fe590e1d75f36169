package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	crc "github.com/noxworld-dev/noxcrc"
)

var (
	bitSet   = color.NRGBA{0x00, 0xc0, 0x00, 0xff}
	bitClear = color.NRGBA{0x40, 0x40, 0x40, 0xff}
	bitTop   = color.NRGBA{0xe0, 0x20, 0x20, 0xff}
)

type traceCommand struct {
	InputFlags `embed:""`

	Color string `enum:"auto,always,never" default:"auto" help:"Draw register bits as colored blocks (${enum})"`
	Input string `arg:"" help:"Input to trace"`
}

func (c *traceCommand) Run(ctx *Context) error {
	in, err := c.loadOne(c.Input)
	if err != nil {
		return err
	}
	out := ctx.Out
	useColor := false
	switch c.Color {
	case "always":
		useColor = true
	case "auto":
		if f, ok := out.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			useColor = true
		}
	}
	if f, ok := out.(*os.File); ok && useColor {
		out = colorable.NewColorable(f)
	}
	t := &tracer{w: out, m: ctx.Model, data: in.data, color: useColor}
	return t.run()
}

// tracer prints the rounds of a computation in the layout of a worked
// example, one line per round.
type tracer struct {
	w     io.Writer
	m     *crc.Model
	data  []byte
	color bool
	err   error
}

func (t *tracer) printf(format string, args ...interface{}) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}

// reg formats a register value as binary and hex, or as colored blocks
// followed by hex.
func (t *tracer) reg(v uint64) string {
	w := t.m.Width()
	hex := formatValue(v, w, "hex")
	if !t.color {
		return fmt.Sprintf("%s (%s)", formatValue(v, w, "bin"), hex)
	}
	var b strings.Builder
	for i := int(w) - 1; i >= 0; i-- {
		c := bitClear
		if v>>uint(i)&1 != 0 {
			c = bitSet
			if i == int(w)-1 {
				c = bitTop
			}
		}
		b.WriteString(ansi256.Default.Block(c))
	}
	b.WriteString("\033[0m (")
	b.WriteString(hex)
	b.WriteString(")")
	return b.String()
}

func (t *tracer) run() error {
	p := t.m.Params()
	w := t.m.Width()
	name := p.Name
	if name == "" {
		name = "CRC"
	}
	t.printf("Step-by-step %s calculation for data: % x\n", name, t.data)
	t.printf("Polynomial %s, width %d\n\n", formatValue(p.Poly, w, "hex"), w)
	t.printf("Initialize CRC = %s\n", t.reg(t.m.Init()))

	prev := t.m.Init()
	sum := t.m.Trace(t.data, func(s crc.Step) {
		if s.Bit == 0 {
			t.printf("\nProcessing byte %d: 0x%02x\n", s.Index+1, t.data[s.Index])
			t.printf("  Current CRC: %s\n", t.reg(prev))
			t.printf("  After XOR:   %s\n", t.reg(s.Before))
		}
		action := "shift left"
		if s.MSB {
			action = "shift left, XOR " + formatValue(p.Poly, w, "hex")
		}
		t.printf("    Bit %d: MSB=%d %-22s -> %s\n", s.Bit+1, b2i(s.MSB), action, t.reg(s.After))
		prev = s.After
	})
	if p.RefOut || p.XorOut != 0 {
		t.printf("\nRegister: %s\n", t.reg(prev))
		if p.RefOut {
			t.printf("Reflect output\n")
		}
		if p.XorOut != 0 {
			t.printf("XOR with %s\n", formatValue(p.XorOut, w, "hex"))
		}
	}
	t.printf("\nFinal %s checksum: %s\n", name, t.reg(sum))
	return t.err
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
