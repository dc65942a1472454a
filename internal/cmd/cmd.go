package cmd

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/josephcopenhaver/bases"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the bases CLI with the given version string and exits
// non-zero on failure.
func Execute(version string) {
	if err := New(version).Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// New returns the root command. Input and output default to the process
// standard streams; set Reader and Writer on the result to redirect them.
func New(version string) *cli.Command {
	common := func() []cli.Flag {
		return []cli.Flag{
			&cli.BoolFlag{
				Name:  "url",
				Usage: "Use the URL-safe alphabet (- and _ instead of + and /)",
			},
			&cli.IntFlag{
				Name:  "base",
				Usage: "Radix of the codec: 16, 32 or 64",
				Value: 64,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "Read from this file instead of stdin",
			},
		}
	}

	return &cli.Command{
		Name:                   "bases",
		Usage:                  "RFC4648 binary-to-text encoding",
		Version:                version,
		UseShortOptionHandling: true,
		Commands: []*cli.Command{
			{
				Name:   "encode",
				Usage:  "Encode input as padded base64 text",
				Flags:  common(),
				Action: encodeAction,
			},
			{
				Name:  "decode",
				Usage: "Decode padded base64 text",
				Flags: append(common(),
					&cli.BoolFlag{
						Name:  "ignore-trailing",
						Usage: "Stop at the first padded group and ignore the rest of the input",
					},
				),
				Action: decodeAction,
			},
		},
	}
}

func encodeAction(ctx context.Context, cmd *cli.Command) error {
	enc, err := selectEncoding(cmd)
	if err != nil {
		return err
	}

	in, err := readInput(cmd)
	if err != nil {
		return err
	}

	var out bytes.Buffer
	if err := enc.EncodeTo(&out, in); err != nil {
		return err
	}

	return writeOutput(cmd, out.Bytes(), true)
}

func decodeAction(ctx context.Context, cmd *cli.Command) error {
	enc, err := selectEncoding(cmd)
	if err != nil {
		return err
	}

	if cmd.Bool("ignore-trailing") {
		enc = enc.WithTrailing(bases.IgnoreTrailing)
	}

	in, err := readInput(cmd)
	if err != nil {
		return err
	}

	// text files and shell pipelines end in a line ending
	in = bytes.TrimSuffix(in, []byte("\n"))
	in = bytes.TrimSuffix(in, []byte("\r"))

	var out bytes.Buffer
	if err := enc.DecodeTo(&out, in); err != nil {
		return fmt.Errorf("decoding input: %w", err)
	}

	return writeOutput(cmd, out.Bytes(), false)
}

func selectEncoding(cmd *cli.Command) (*bases.Encoding, error) {
	b, err := bases.ParseBase(int(cmd.Int("base")))
	if err != nil {
		return nil, err
	}

	if _, err := bases.For(b); err != nil {
		return nil, err
	}

	if cmd.Bool("url") {
		return bases.URLEncoding, nil
	}

	return bases.StdEncoding, nil
}

func readInput(cmd *cli.Command) ([]byte, error) {
	if path := cmd.String("input"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		return data, nil
	}

	r := cmd.Root().Reader
	if r == nil {
		r = os.Stdin
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return data, nil
}

// writeOutput writes data, followed by a newline when the output is
// text going to a terminal.
func writeOutput(cmd *cli.Command, data []byte, text bool) error {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}

	if _, err := w.Write(data); err != nil {
		return err
	}

	if f, ok := w.(*os.File); ok && text && term.IsTerminal(int(f.Fd())) {
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	return nil
}
