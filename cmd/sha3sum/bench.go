package main

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/strandhash/keccak/internal/keccakf"
	"github.com/strandhash/keccak/sha3"
)

// benchCommand is the Go rendering of sha3_test.c's main: run every
// strategy ten times over a payload and fold the wall-clock durations into
// an exponential moving average, instead of the original's printf/clock().
func benchCommand(logger *zerolog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "time every Keccak-f[1600] strategy hashing a payload",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "size", Value: 1 << 20, Usage: "payload size in bytes"},
			&cli.IntFlag{Name: "iterations", Value: 10, Usage: "iterations per strategy"},
		},
		Action: func(c *cli.Context) error {
			size := c.Int("size")
			iterations := c.Int("iterations")
			payload := make([]byte, size)

			for _, id := range allStrategyIDs {
				s, err := keccakf.ByID(id)
				if err != nil {
					return err
				}

				var ema time.Duration
				for i := 0; i < iterations; i++ {
					start := time.Now()
					sha3.SumWithStrategy(payload, sha3.Size256, s)
					elapsed := time.Since(start)

					if i == 0 {
						ema = elapsed
					} else {
						// Same weighting sha3_test.c's EMA loop uses: half the
						// new sample, half the running average.
						ema = (ema + elapsed) / 2
					}
				}

				logger.Info().
					Str("strategy", id.String()).
					Int("size", size).
					Int("iterations", iterations).
					Dur("avg", ema).
					Msg("bench")
			}
			return nil
		},
	}
}
