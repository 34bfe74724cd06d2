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

var _ runtime.Instruction = (*InitializeVault)(nil)

// InitializeVault opens a vault for the signing payer at the derived
// address for (VaultSeed, payer). The record account is topped up to
// the rent-exempt floor from the payer; an optional starting deposit
// moves alongside its bookkeeping entry.
type InitializeVault struct {
	HasStart bool
	Start    uint64
}

func (*InitializeVault) GetTypeID() uint8 {
	return consts.InitializeVaultID
}

func (*InitializeVault) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "payer", Signer: true, Writable: true, Kind: storage.AnyKind},
		{Name: "vault", Writable: true, ProgramOwned: true, Kind: storage.Uninitialized},
	}
}

func (i *InitializeVault) Execute(ctx *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	payer, vault := accounts[0], accounts[1]

	derived, bump, err := codec.FindProgramAddress(ctx.ProgramID, storage.VaultSeed, payer.Key[:])
	if err != nil {
		return nil, err
	}
	if vault.Key != derived {
		return nil, fmt.Errorf("%w: vault %s, derived %s", runtime.ErrInvalidAccount, vault.Key, derived)
	}

	if len(vault.Data) == 0 {
		if err := ctx.Allocate(vault, storage.VaultSize); err != nil {
			return nil, err
		}
	}
	if floor := ctx.Rent.MinimumBalance(storage.VaultSize); vault.Lamports < floor {
		if err := ctx.SystemTransfer(payer, vault, floor-vault.Lamports); err != nil {
			return nil, err
		}
	}

	start := uint64(0)
	if i.HasStart {
		start = i.Start
	}
	if start > 0 {
		if err := ctx.SystemTransfer(payer, vault, start); err != nil {
			return nil, err
		}
	}

	record := &storage.Vault{
		Authority: payer.Key,
		Balance:   start,
		Bump:      bump,
	}
	if err := record.Encode(vault.Data); err != nil {
		return nil, err
	}

	return &InitializeVaultResult{Balance: start}, nil
}

var _ codec.Typed = (*InitializeVaultResult)(nil)

type InitializeVaultResult struct {
	Balance uint64
}

func (*InitializeVaultResult) GetTypeID() uint8 {
	return consts.InitializeVaultID
}
