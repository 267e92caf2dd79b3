// Command sha3sum is a timing and known-answer harness for the sha3
// package, descended from the original C implementation's sha3_test.c
// and this teacher's cmd/shakesum.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	app := &cli.App{
		Name:  "sha3sum",
		Usage: "compute, print and benchmark SHA-3 digests across every Keccak-f[1600] strategy",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "compare",
				Usage: "also compute the digest via golang.org/x/crypto/sha3 and warn on mismatch",
			},
		},
		Commands: []*cli.Command{
			katCommand(&logger),
			benchCommand(&logger),
			sumCommand(&logger),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
