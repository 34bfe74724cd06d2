// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/storage"
)

// AccountSpec declares the constraints on one account position of an
// instruction. Constraints are enforced uniformly by the dispatcher,
// never hand-rolled inside handlers.
type AccountSpec struct {
	Name string

	Writable     bool
	Signer       bool
	ProgramOwned bool

	// Kind constrains the record discriminant: a storage discriminant
	// value, storage.Uninitialized to require a fresh account, or
	// storage.AnyKind for no constraint.
	Kind byte
}

// validateAccounts checks every declared constraint against the
// presented handles. It is a pure guard: no side effects on success,
// and any failure aborts the instruction before the handler runs.
func validateAccounts(programID codec.Address, specs []AccountSpec, accounts []*Account) error {
	if len(accounts) < len(specs) {
		return fmt.Errorf("%w: have %d, want %d", ErrMissingAccount, len(accounts), len(specs))
	}
	for i, spec := range specs {
		acct := accounts[i]

		// Ownership first: an account owned by another program must be
		// rejected before its bytes are interpreted at all.
		if spec.ProgramOwned && acct.Owner != programID {
			return fmt.Errorf("%w: %s (%s)", ErrNotOwned, spec.Name, acct.Key)
		}

		switch spec.Kind {
		case storage.AnyKind:
		case storage.Uninitialized:
			if storage.Kind(acct.Data) != storage.Uninitialized {
				return fmt.Errorf("%w: %s (%s)", ErrAlreadyInitialized, spec.Name, acct.Key)
			}
		default:
			switch kind := storage.Kind(acct.Data); kind {
			case spec.Kind:
			case storage.Uninitialized:
				return fmt.Errorf("%w: %s (%s)", storage.ErrNotInitialized, spec.Name, acct.Key)
			default:
				return fmt.Errorf("%w: %s holds kind %d, want %d", storage.ErrWrongKind, spec.Name, kind, spec.Kind)
			}
		}

		if spec.Signer && !acct.IsSigner {
			return fmt.Errorf("%w: %s (%s)", ErrMissingSignature, spec.Name, acct.Key)
		}
		if spec.Writable && !acct.IsWritable {
			return fmt.Errorf("%w: %s (%s)", ErrNotWritable, spec.Name, acct.Key)
		}
	}
	return nil
}
