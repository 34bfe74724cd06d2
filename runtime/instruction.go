// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"reflect"

	"github.com/strongboxvm/strongbox/codec"
)

// Instruction is a single opcode-identified state transition. The
// wire format is [typeID uint8] || borsh(args).
//
// Execute receives the account handles in the order declared by
// Accounts(), after the validation layer has enforced every declared
// constraint. Given validated inputs it is pure with respect to its
// records: same arguments and same prior account state produce the
// same resulting state.
type Instruction interface {
	codec.Typed

	// Accounts declares the per-position constraints the validation
	// layer enforces before Execute runs.
	Accounts() []AccountSpec

	// Execute performs the state transition and returns a typed result
	// for the caller. Any error aborts the host transaction with no
	// observable mutation.
	Execute(ctx *Context, accounts []*Account) (codec.Typed, error)
}

// Marshal encodes an instruction into its wire format:
// [typeID uint8] || borsh(args).
//
// Instructions are registered as pointer types, but borsh encodes a
// pointer as an option tag; the wire carries the bare args struct, so
// the dynamic value is dereferenced before serialization.
func Marshal(instruction Instruction) ([]byte, error) {
	args, err := codec.Serialize(reflect.ValueOf(instruction).Elem().Interface())
	if err != nil {
		return nil, err
	}
	return append([]byte{instruction.GetTypeID()}, args...), nil
}
