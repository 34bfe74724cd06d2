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

var _ runtime.Instruction = (*Withdraw)(nil)

// Withdraw moves lamports from a vault back to its signing authority,
// debiting the bookkeeping balance by the same amount. Amounts beyond
// the balance fail with insufficient funds and leave the vault
// untouched; the rent floor is never spendable.
type Withdraw struct {
	Amount uint64
}

func (*Withdraw) GetTypeID() uint8 {
	return consts.WithdrawID
}

func (*Withdraw) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "authority", Signer: true, Writable: true, Kind: storage.AnyKind},
		{Name: "vault", Writable: true, ProgramOwned: true, Kind: storage.VaultDiscriminant},
	}
}

func (w *Withdraw) Execute(ctx *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	authority, vault := accounts[0], accounts[1]
	record, err := storage.DecodeVault(vault.Data)
	if err != nil {
		return nil, err
	}
	if record.Authority != authority.Key {
		return nil, fmt.Errorf("%w: signer %s", runtime.ErrUnauthorized, authority.Key)
	}
	if err := record.Debit(w.Amount); err != nil {
		return nil, err
	}
	if err := ctx.ProgramTransfer(vault, authority, w.Amount); err != nil {
		return nil, err
	}
	if err := record.Encode(vault.Data); err != nil {
		return nil, err
	}

	return &WithdrawResult{Balance: record.Balance}, nil
}

var _ codec.Typed = (*WithdrawResult)(nil)

type WithdrawResult struct {
	Balance uint64
}

func (*WithdrawResult) GetTypeID() uint8 {
	return consts.WithdrawID
}
