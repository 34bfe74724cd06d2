// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"
	"github.com/strongboxvm/strongbox/runtime"
	"github.com/strongboxvm/strongbox/storage"
)

var _ runtime.Instruction = (*InitializeCounter)(nil)

// InitializeCounter creates a counter record owned by the signing
// payer. Replays are rejected by the uninitialized-account constraint.
type InitializeCounter struct {
	// HasStart selects a caller-supplied starting value; borsh has no
	// option type, so the pair stands in for one.
	HasStart bool
	Start    uint64
}

func (*InitializeCounter) GetTypeID() uint8 {
	return consts.InitializeCounterID
}

func (*InitializeCounter) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "payer", Signer: true, Kind: storage.AnyKind},
		{Name: "counter", Writable: true, ProgramOwned: true, Kind: storage.Uninitialized},
	}
}

func (i *InitializeCounter) Execute(ctx *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	payer, counter := accounts[0], accounts[1]
	if len(counter.Data) == 0 {
		if err := ctx.Allocate(counter, storage.CounterSize); err != nil {
			return nil, err
		}
	}

	start := uint64(0)
	if i.HasStart {
		start = i.Start
	}
	record := &storage.Counter{
		Authority: payer.Key,
		Count:     start,
	}
	if err := record.Encode(counter.Data); err != nil {
		return nil, err
	}

	return &InitializeCounterResult{Count: start}, nil
}

var _ codec.Typed = (*InitializeCounterResult)(nil)

type InitializeCounterResult struct {
	Count uint64
}

func (*InitializeCounterResult) GetTypeID() uint8 {
	return consts.InitializeCounterID
}
