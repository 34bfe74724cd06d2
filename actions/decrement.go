// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"
	"github.com/strongboxvm/strongbox/runtime"
	"github.com/strongboxvm/strongbox/storage"
)

var _ runtime.Instruction = (*Decrement)(nil)

// Decrement subtracts Delta from a counter. The signer must be the
// stored authority; when Delta exceeds the count the instruction fails
// with underflow and the record is unchanged.
type Decrement struct {
	Delta uint64
}

func (*Decrement) GetTypeID() uint8 {
	return consts.DecrementID
}

func (*Decrement) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "authority", Signer: true, Kind: storage.AnyKind},
		{Name: "counter", Writable: true, ProgramOwned: true, Kind: storage.CounterDiscriminant},
	}
}

func (d *Decrement) Execute(_ *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	authority, counter := accounts[0], accounts[1]
	record, err := storage.DecodeCounter(counter.Data)
	if err != nil {
		return nil, err
	}
	if record.Authority != authority.Key {
		return nil, fmt.Errorf("%w: signer %s", runtime.ErrUnauthorized, authority.Key)
	}
	if err := record.Sub(d.Delta); err != nil {
		return nil, err
	}
	if err := record.Encode(counter.Data); err != nil {
		return nil, err
	}

	return &DecrementResult{Count: record.Count}, nil
}

var _ codec.Typed = (*DecrementResult)(nil)

type DecrementResult struct {
	Count uint64
}

func (*DecrementResult) GetTypeID() uint8 {
	return consts.DecrementID
}
