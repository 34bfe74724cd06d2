// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// VaultSize is the fixed byte length of an initialized vault region.
const VaultSize = consts.ByteLen + codec.AddressLen + consts.Uint64Len + consts.ByteLen

// VaultSeed prefixes the derivation of a vault record address.
var VaultSeed = []byte("VAULT")

// Vault is the record persisted in a vault account. The lamports held
// on the account itself are the custody; Balance is its bookkeeping
// mirror, so lamports == rent floor + Balance at all times.
type Vault struct {
	// Authority is the identity permitted to withdraw and close.
	Authority codec.Address

	// Balance is the custodial value held for Authority.
	Balance uint64

	// Bump completes the (VaultSeed, Authority) address derivation.
	Bump uint8
}

func DecodeVault(data []byte) (*Vault, error) {
	return decodeRecord[Vault](data, VaultDiscriminant, VaultSize)
}

func (v *Vault) Encode(dst []byte) error {
	return encodeRecord(*v, dst, VaultDiscriminant, VaultSize)
}

// Credit increases Balance by amount with checked arithmetic.
func (v *Vault) Credit(amount uint64) error {
	nbal, err := smath.Add64(v.Balance, amount)
	if err != nil {
		return fmt.Errorf("%w: balance=%d amount=%d", ErrOverflow, v.Balance, amount)
	}
	v.Balance = nbal
	return nil
}

// Debit decreases Balance by amount. It fails with
// [ErrInsufficientFunds] when amount exceeds Balance.
func (v *Vault) Debit(amount uint64) error {
	nbal, err := smath.Sub(v.Balance, amount)
	if err != nil {
		return fmt.Errorf("%w: balance=%d amount=%d", ErrInsufficientFunds, v.Balance, amount)
	}
	v.Balance = nbal
	return nil
}
