// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"

	"github.com/strongboxvm/strongbox/codec"
)

// accountStorageOverhead is the per-account byte count charged for rent
// on top of the data region.
const accountStorageOverhead = 128

// Rent is the host rent schedule. An account holding at least
// MinimumBalance for its data size is exempt from collection.
type Rent struct {
	LamportsPerByteYear uint64
	ExemptionYears      uint64
}

var DefaultRent = Rent{
	LamportsPerByteYear: 3480,
	ExemptionYears:      2,
}

func (r Rent) MinimumBalance(dataLen int) uint64 {
	return (accountStorageOverhead + uint64(dataLen)) * r.LamportsPerByteYear * r.ExemptionYears
}

// Context carries the host services available to one instruction
// invocation. Handlers hold it only for the duration of Execute.
type Context struct {
	ProgramID codec.Address
	Rent      Rent

	Log logging.Logger
}

// SystemTransfer moves lamports out of a system-owned funder that
// signed the transaction. This is the host value-transfer primitive
// used when the program does not own the debited account.
func (ctx *Context) SystemTransfer(from, to *Account, lamports uint64) error {
	if from.Owner != SystemOwner {
		return fmt.Errorf("%w: %s", ErrInvalidFunder, from.Key)
	}
	if !from.IsSigner {
		return fmt.Errorf("%w: funder %s", ErrMissingSignature, from.Key)
	}
	return ctx.transfer(from, to, lamports)
}

// ProgramTransfer moves lamports out of an account owned by this
// program. Ownership is the authorization: no signature is required.
func (ctx *Context) ProgramTransfer(from, to *Account, lamports uint64) error {
	if from.Owner != ctx.ProgramID {
		return fmt.Errorf("%w: %s", ErrNotOwned, from.Key)
	}
	return ctx.transfer(from, to, lamports)
}

func (ctx *Context) transfer(from, to *Account, lamports uint64) error {
	if !from.IsWritable {
		return fmt.Errorf("%w: %s", ErrNotWritable, from.Key)
	}
	if !to.IsWritable {
		return fmt.Errorf("%w: %s", ErrNotWritable, to.Key)
	}
	if err := from.subLamports(lamports); err != nil {
		return err
	}
	if err := to.addLamports(lamports); err != nil {
		// Restore the debit so a failed transfer has no effect even
		// before the host-level rollback.
		from.Lamports += lamports
		return err
	}
	return nil
}

// Allocate sizes the data region of a fresh program-owned account. The
// host allocates storage only for accounts the program owns.
func (ctx *Context) Allocate(acct *Account, size int) error {
	if acct.Owner != ctx.ProgramID {
		return fmt.Errorf("%w: %s", ErrNotOwned, acct.Key)
	}
	if len(acct.Data) != 0 {
		return fmt.Errorf("%w: %s", ErrAlreadyInitialized, acct.Key)
	}
	acct.Data = make([]byte, size)
	return nil
}
