// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

import (
	"fmt"
	"sync/atomic"
)

// StrategyID names one of the six interchangeable permutation strategies.
type StrategyID int

const (
	Reference StrategyID = iota
	Compact
	InplaceUnrolled
	IntermediateUnrolled
	IntermediateEarlyParity
	IntermediateLaneComplement
)

func (id StrategyID) String() string {
	switch id {
	case Reference:
		return "reference"
	case Compact:
		return "compact"
	case InplaceUnrolled:
		return "inplace-unrolled"
	case IntermediateUnrolled:
		return "intermediate-unrolled"
	case IntermediateEarlyParity:
		return "intermediate-early-parity"
	case IntermediateLaneComplement:
		return "intermediate-lane-complement"
	default:
		return fmt.Sprintf("StrategyID(%d)", int(id))
	}
}

// Strategy bundles a permutation implementation with the flag the sponge
// layer needs to know at its absorb/squeeze boundary: whether this strategy
// expects the P-lane set (see pLaneSet) held complemented across calls.
type Strategy struct {
	ID         StrategyID
	Permute    func(*State)
	RequiresLC bool
}

var strategies = [...]*Strategy{
	Reference:                  {ID: Reference, Permute: permuteReference},
	Compact:                    {ID: Compact, Permute: permuteCompact},
	InplaceUnrolled:            {ID: InplaceUnrolled, Permute: permuteInplaceUnrolled},
	IntermediateUnrolled:       {ID: IntermediateUnrolled, Permute: permuteIntermediateUnrolled},
	IntermediateEarlyParity:    {ID: IntermediateEarlyParity, Permute: permuteIntermediateEarlyParity},
	IntermediateLaneComplement: {ID: IntermediateLaneComplement, Permute: permuteIntermediateLaneComplement, RequiresLC: true},
}

// ByID returns the registered strategy for id, or an error if id is unknown.
func ByID(id StrategyID) (*Strategy, error) {
	if id < 0 || int(id) >= len(strategies) {
		return nil, fmt.Errorf("keccakf: unknown strategy id %d", int(id))
	}
	return strategies[id], nil
}

var active atomic.Pointer[Strategy]

func init() {
	active.Store(strategies[Reference])
}

// SetPermutation installs id as the process-wide default strategy used by
// callers that don't thread a *Strategy through explicitly.
func SetPermutation(id StrategyID) error {
	s, err := ByID(id)
	if err != nil {
		return err
	}
	active.Store(s)
	return nil
}

// Active returns the process-wide default strategy.
func Active() *Strategy {
	return active.Load()
}
