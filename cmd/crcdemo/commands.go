package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	crc "github.com/noxworld-dev/noxcrc"
)

func formatValue(v uint64, width uint, format string) string {
	switch format {
	case "bin":
		return fmt.Sprintf("0b%0*b", int(width), v)
	case "dec":
		return fmt.Sprintf("%d", v)
	}
	return fmt.Sprintf("0x%0*x", int(width+3)/4, v)
}

type sumCommand struct {
	InputFlags `embed:""`

	Table  bool     `help:"Use the lookup table instead of the bitwise algorithm"`
	Format string   `short:"f" enum:"hex,bin,dec" default:"hex" help:"Output format (${enum})"`
	Inputs []string `arg:"" optional:"" help:"Inputs, standard input when empty"`
}

func (c *sumCommand) Run(ctx *Context) error {
	inputs, err := c.load(c.Inputs, ctx.In)
	if err != nil {
		return err
	}
	checksum := ctx.Model.Checksum
	if c.Table {
		checksum = crc.MakeTable(ctx.Model).Checksum
	}
	for _, in := range inputs {
		v := checksum(in.data)
		if _, err := fmt.Fprintf(ctx.Out, "%s  %s\n", formatValue(v, ctx.Model.Width(), c.Format), in.label); err != nil {
			return err
		}
	}
	return nil
}

type compareCommand struct {
	Original string   `default:"Hello" help:"Original message"`
	Variants []string `arg:"" optional:"" help:"Corrupted messages, defaults to a 1-bit error, a byte swap and a multi-bit error"`
}

func defaultVariants(orig string) []string {
	b := []byte(orig)
	var out []string
	if len(b) > 2 {
		oneBit := append([]byte(nil), b...)
		oneBit[2] ^= 0x01
		out = append(out, string(oneBit))
	}
	if len(b) > 4 {
		swapped := append([]byte(nil), b...)
		swapped[3], swapped[4] = swapped[4], swapped[3]
		out = append(out, string(swapped))
	}
	if len(b) > 1 {
		multi := append([]byte(nil), b...)
		multi[1] ^= 0x20
		out = append(out, string(multi))
	}
	return out
}

func (c *compareCommand) Run(ctx *Context) error {
	variants := c.Variants
	if len(variants) == 0 {
		variants = defaultVariants(c.Original)
	}
	m := ctx.Model
	name := m.Params().Name
	if name == "" {
		name = "CRC"
	}
	checks := []struct {
		name string
		fn   func([]byte) uint64
		w    uint
	}{
		{"Sum", func(p []byte) uint64 { return uint64(crc.Sum8(p)) }, 8},
		{"XOR", func(p []byte) uint64 { return uint64(crc.XOR8(p)) }, 8},
		{name, m.Checksum, m.Width()},
	}

	tw := tabwriter.NewWriter(ctx.Out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Checksum\t%q", c.Original)
	for _, v := range variants {
		fmt.Fprintf(tw, "\t%q", v)
	}
	fmt.Fprintln(tw)
	for _, ch := range checks {
		orig := ch.fn([]byte(c.Original))
		fmt.Fprintf(tw, "%s\t%s", ch.name, formatValue(orig, ch.w, "hex"))
		for _, v := range variants {
			got := ch.fn([]byte(v))
			verdict := "detected"
			switch {
			case v == c.Original:
				verdict = "same"
			case got == orig:
				verdict = "UNDETECTED!"
			}
			fmt.Fprintf(tw, "\t%s %s", formatValue(got, ch.w, "hex"), verdict)
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

type tableCommand struct {
	Columns int `default:"8" help:"Entries per line"`
}

func (c *tableCommand) Run(ctx *Context) error {
	tab := crc.MakeTable(ctx.Model)
	cols := c.Columns
	if cols <= 0 {
		cols = 8
	}
	return writeTable(ctx.Out, tab, cols)
}

func writeTable(w io.Writer, tab *crc.Table, cols int) error {
	width := tab.Model().Width()
	for i := 0; i < crc.Size; i++ {
		sep := " "
		if i%cols == cols-1 || i == crc.Size-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s%s", formatValue(tab.Entry(byte(i)), width, "hex"), sep); err != nil {
			return err
		}
	}
	return nil
}

type modelsCommand struct {
	YAML bool `name:"yaml" help:"Print the selected model as a YAML model file"`
}

func (c *modelsCommand) Run(ctx *Context) error {
	if c.YAML {
		data, err := marshalModel(ctx.Model)
		if err != nil {
			return err
		}
		_, err = ctx.Out.Write(data)
		return err
	}
	for _, m := range crc.Presets() {
		check := m.Checksum([]byte(crc.CheckInput))
		if _, err := fmt.Fprintf(ctx.Out, "%s check=%s\n", m, formatValue(check, m.Width(), "hex")); err != nil {
			return err
		}
	}
	return nil
}
