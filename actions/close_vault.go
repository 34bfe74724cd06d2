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

var _ runtime.Instruction = (*CloseVault)(nil)

// CloseVault refunds a vault's entire lamport balance (custody plus
// rent) to its signing authority and resets the record region to the
// uninitialized sentinel so the account can be reclaimed by the host.
type CloseVault struct{}

func (*CloseVault) GetTypeID() uint8 {
	return consts.CloseVaultID
}

func (*CloseVault) Accounts() []runtime.AccountSpec {
	return []runtime.AccountSpec{
		{Name: "authority", Signer: true, Writable: true, Kind: storage.AnyKind},
		{Name: "vault", Writable: true, ProgramOwned: true, Kind: storage.VaultDiscriminant},
	}
}

func (*CloseVault) Execute(ctx *runtime.Context, accounts []*runtime.Account) (codec.Typed, error) {
	authority, vault := accounts[0], accounts[1]
	record, err := storage.DecodeVault(vault.Data)
	if err != nil {
		return nil, err
	}
	if record.Authority != authority.Key {
		return nil, fmt.Errorf("%w: signer %s", runtime.ErrUnauthorized, authority.Key)
	}

	refunded := vault.Lamports
	if refunded > 0 {
		if err := ctx.ProgramTransfer(vault, authority, refunded); err != nil {
			return nil, err
		}
	}
	for i := range vault.Data {
		vault.Data[i] = 0
	}

	return &CloseVaultResult{Refunded: refunded}, nil
}

var _ codec.Typed = (*CloseVaultResult)(nil)

type CloseVaultResult struct {
	Refunded uint64
}

func (*CloseVaultResult) GetTypeID() uint8 {
	return consts.CloseVaultID
}
