// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/storage"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// SystemOwner marks an account whose data region is owned by the host
// system program rather than by any deployed program.
var SystemOwner = codec.EmptyAddress

// Account is one host-presented account handle. The host guarantees
// exclusive access to it for the duration of a single instruction and
// discards every mutation if the instruction fails.
type Account struct {
	Key   codec.Address
	Owner codec.Address

	Lamports uint64
	Data     []byte

	IsSigner   bool
	IsWritable bool
}

func (a *Account) addLamports(amount uint64) error {
	nbal, err := smath.Add64(a.Lamports, amount)
	if err != nil {
		return fmt.Errorf("%w: lamports=%d amount=%d", storage.ErrOverflow, a.Lamports, amount)
	}
	a.Lamports = nbal
	return nil
}

func (a *Account) subLamports(amount uint64) error {
	nbal, err := smath.Sub(a.Lamports, amount)
	if err != nil {
		return fmt.Errorf("%w: lamports=%d amount=%d", storage.ErrInsufficientFunds, a.Lamports, amount)
	}
	a.Lamports = nbal
	return nil
}
