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

var _ runtime.Instruction = (*Increment)(nil)

// Increment adds Delta to a counter. The signer must be the stored
// authority and the addition is checked: on overflow the instruction
// fails and the record is unchanged.
type Increment struct {
	Delta uint64
}

func (*Increment) GetTypeID() uint8 {
	return consts.IncrementID
}

func (*Increment) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "authority", Signer: true, Kind: storage.AnyKind},
		{Name: "counter", Writable: true, ProgramOwned: true, Kind: storage.CounterDiscriminant},
	}
}

func (i *Increment) Execute(_ *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	authority, counter := accounts[0], accounts[1]
	record, err := storage.DecodeCounter(counter.Data)
	if err != nil {
		return nil, err
	}
	if record.Authority != authority.Key {
		return nil, fmt.Errorf("%w: signer %s", runtime.ErrUnauthorized, authority.Key)
	}
	if err := record.Add(i.Delta); err != nil {
		return nil, err
	}
	if err := record.Encode(counter.Data); err != nil {
		return nil, err
	}

	return &IncrementResult{Count: record.Count}, nil
}

var _ codec.Typed = (*IncrementResult)(nil)

type IncrementResult struct {
	Count uint64
}

func (*IncrementResult) GetTypeID() uint8 {
	return consts.IncrementID
}
