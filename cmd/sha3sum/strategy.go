package main

import (
	"fmt"

	"github.com/strandhash/keccak/internal/keccakf"
)

var strategyNames = map[string]keccakf.StrategyID{
	"reference":                    keccakf.Reference,
	"compact":                      keccakf.Compact,
	"inplace-unrolled":             keccakf.InplaceUnrolled,
	"intermediate-unrolled":        keccakf.IntermediateUnrolled,
	"intermediate-early-parity":    keccakf.IntermediateEarlyParity,
	"intermediate-lane-complement": keccakf.IntermediateLaneComplement,
}

var allStrategyIDs = []keccakf.StrategyID{
	keccakf.Reference,
	keccakf.Compact,
	keccakf.InplaceUnrolled,
	keccakf.IntermediateUnrolled,
	keccakf.IntermediateEarlyParity,
	keccakf.IntermediateLaneComplement,
}

func strategyByName(name string) (*keccakf.Strategy, error) {
	id, ok := strategyNames[name]
	if !ok {
		return nil, fmt.Errorf("sha3sum: unknown strategy %q", name)
	}
	return keccakf.ByID(id)
}
