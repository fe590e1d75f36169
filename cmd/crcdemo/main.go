// Command crcdemo computes and explains CRC checksums.
//
// It prints checksums for text, hex or file inputs, traces the bitwise
// algorithm round by round, compares a CRC with the additive and XOR
// checksums on corrupted data, and dumps lookup tables.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"

	crc "github.com/noxworld-dev/noxcrc"
)

type CLI struct {
	Model     string `short:"m" default:"CRC-8" env:"CRCDEMO_MODEL" help:"Built-in model name, see the models command"`
	ModelFile string `name:"model-file" type:"existingfile" placeholder:"PATH" env:"CRCDEMO_MODEL_FILE" help:"YAML file with CRC parameters, overrides --model"`

	Sum     sumCommand     `cmd:"" help:"Print checksums of the inputs"`
	Trace   traceCommand   `cmd:"" help:"Show every round of the bitwise algorithm"`
	Compare compareCommand `cmd:"" help:"Compare error detection of sum, XOR and CRC checksums"`
	Table   tableCommand   `cmd:"" help:"Print the lookup table of the model"`
	Models  modelsCommand  `cmd:"" help:"List built-in models"`
}

// Context carries what every command needs.
type Context struct {
	Model *crc.Model
	Out   io.Writer
	In    io.Reader
}

func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	m, err := resolveModel(cli.Model, cli.ModelFile)
	if err != nil {
		return fmt.Errorf("model: %w", err)
	}
	kongCtx.Bind(&Context{
		Model: m,
		Out:   kongCtx.Stdout,
		In:    os.Stdin,
	})
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("crcdemo: ")

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("crcdemo"),
		kong.Description("Compute and explain cyclic redundancy checks."),
		kong.UsageOnError(),
	)
	if err := ctx.Run(); err != nil {
		log.Fatal(err)
	}
}
