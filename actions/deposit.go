// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"
	"github.com/strongboxvm/strongbox/runtime"
	"github.com/strongboxvm/strongbox/storage"
)

var _ runtime.Instruction = (*Deposit)(nil)

// Deposit moves lamports from any signing depositor into a vault and
// credits the bookkeeping balance by the same amount. The depositor
// need not be the vault authority: deposits only ever increase the
// balance.
type Deposit struct {
	Amount uint64
}

func (*Deposit) GetTypeID() uint8 {
	return consts.DepositID
}

func (*Deposit) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "depositor", Signer: true, Writable: true, Kind: storage.AnyKind},
		{Name: "vault", Writable: true, ProgramOwned: true, Kind: storage.VaultDiscriminant},
	}
}

func (d *Deposit) Execute(ctx *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	depositor, vault := accounts[0], accounts[1]
	record, err := storage.DecodeVault(vault.Data)
	if err != nil {
		return nil, err
	}
	if err := record.Credit(d.Amount); err != nil {
		return nil, err
	}
	// The custodial movement and the bookkeeping write commit together:
	// a failed transfer returns before the record is re-encoded.
	if err := ctx.SystemTransfer(depositor, vault, d.Amount); err != nil {
		return nil, err
	}
	if err := record.Encode(vault.Data); err != nil {
		return nil, err
	}

	return &DepositResult{Balance: record.Balance}, nil
}

var _ codec.Typed = (*DepositResult)(nil)

type DepositResult struct {
	Balance uint64
}

func (*DepositResult) GetTypeID() uint8 {
	return consts.DepositID
}
