package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/strandhash/keccak/internal/keccakf"
	"github.com/strandhash/keccak/internal/refshim"
	"github.com/strandhash/keccak/sha3"
)

// sumCommand is the direct descendant of the teacher's
// cmd/shakesum/shake256sum.go: hash stdin or named files and print the
// digest, generalized from SHAKE256 to the four fixed-output SHA-3 sizes.
func sumCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:      "sum",
		Usage:     "print the SHA3-256 (or --size) digest of stdin or named files",
		ArgsUsage: "[file...]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: sha3.Size256, Usage: "digest size in bytes: 28, 32, 48 or 64"},
			&cli.StringFlag{Name: "strategy", Value: "reference", Usage: "Keccak-f[1600] strategy to use"},
		},
		Action: func(c *cli.Context) error {
			size := c.Int("size")
			s, err := strategyByName(c.String("strategy"))
			if err != nil {
				return err
			}

			compare := c.Bool("compare")
			args := c.Args().Slice()
			if len(args) == 0 {
				return sumReader(logger, os.Stdin, "-", size, s, compare)
			}
			for _, name := range args {
				if err := sumFile(logger, name, size, s, compare); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func sumFile(logger *zerolog.Logger, name string, size int, s *keccakf.Strategy, compare bool) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("sha3sum: %w", err)
	}
	defer f.Close()
	return sumReader(logger, f, name, size, s, compare)
}

func sumReader(logger *zerolog.Logger, r io.Reader, name string, size int, s *keccakf.Strategy, compare bool) error {
	msg, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("sha3sum: reading %s: %w", name, err)
	}

	digest := sha3.SumWithStrategy(msg, size, s)
	fmt.Printf("%s  %s\n", hex.EncodeToString(digest), name)

	if compare {
		ref := refshim.Sum(msg, size)
		if hex.EncodeToString(digest) != hex.EncodeToString(ref) {
			logger.Warn().Str("file", name).Msg("digest disagrees with golang.org/x/crypto/sha3")
		}
	}
	return nil
}
