// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtimetest

import (
	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/crypto/ed25519"
	"github.com/strongboxvm/strongbox/runtime"
)

// Env is an in-memory host for driving a program through full
// instruction round trips. It implements the host's transaction
// contract: every account mutation of a failed instruction is rolled
// back, and accounts are presented with per-call signer/writable flags.
type Env struct {
	ProgramID codec.Address
	Rent      runtime.Rent
	Runtime   *runtime.Runtime

	ledger map[codec.Address]*runtime.Account
}

// AccountMeta names one account of an instruction call and how it is
// presented, mirroring the (pubkey, is_signer, is_writable) triple of
// the host wire format.
type AccountMeta struct {
	Key      codec.Address
	Signer   bool
	Writable bool
}

func New(programID codec.Address, registry *runtime.Registry) (*Env, error) {
	rent := runtime.DefaultRent
	r, err := runtime.New(registry, rent, logging.NoLog{}, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	return &Env{
		ProgramID: programID,
		Rent:      rent,
		Runtime:   r,
		ledger:    map[codec.Address]*runtime.Account{},
	}, nil
}

// GenerateKey returns a fresh signing key and its account address.
func GenerateKey() (ed25519.PrivateKey, codec.Address, error) {
	priv, err := ed25519.GeneratePrivateKey()
	if err != nil {
		return ed25519.EmptyPrivateKey, codec.EmptyAddress, err
	}
	return priv, priv.PublicKey().Address(), nil
}

// NewSystemAccount creates a funded system-owned account.
func (e *Env) NewSystemAccount(key codec.Address, lamports uint64) *runtime.Account {
	acct := &runtime.Account{
		Key:      key,
		Owner:    runtime.SystemOwner,
		Lamports: lamports,
	}
	e.ledger[key] = acct
	return acct
}

// NewProgramAccount creates an unallocated account owned by the program
// under test, the shape a record account has before Initialize.
func (e *Env) NewProgramAccount(key codec.Address) *runtime.Account {
	acct := &runtime.Account{
		Key:   key,
		Owner: e.ProgramID,
	}
	e.ledger[key] = acct
	return acct
}

// NewForeignAccount creates an account owned by some other program,
// for account-substitution cases.
func (e *Env) NewForeignAccount(key codec.Address, owner codec.Address) *runtime.Account {
	acct := &runtime.Account{
		Key:   key,
		Owner: owner,
	}
	e.ledger[key] = acct
	return acct
}

// Account returns the canonical handle stored in the ledger.
func (e *Env) Account(key codec.Address) *runtime.Account {
	return e.ledger[key]
}

// TotalLamports sums the ledger, for conservation assertions.
func (e *Env) TotalLamports() uint64 {
	total := uint64(0)
	for _, acct := range e.ledger {
		total += acct.Lamports
	}
	return total
}

type snapshot struct {
	lamports uint64
	data     []byte
}

// Process marshals the instruction, presents the named accounts with
// the requested flags, and executes it. On failure every presented
// account is restored, matching the host's all-or-nothing semantics.
func (e *Env) Process(instruction runtime.Instruction, metas ...AccountMeta) (codec.Typed, error) {
	data, err := runtime.Marshal(instruction)
	if err != nil {
		return nil, err
	}
	return e.ProcessRaw(data, metas...)
}

// ProcessRaw executes pre-encoded instruction data, for malformed-wire
// cases that Marshal could never produce.
func (e *Env) ProcessRaw(instructionData []byte, metas ...AccountMeta) (codec.Typed, error) {
	presented := make([]*runtime.Account, len(metas))
	snapshots := make([]snapshot, len(metas))
	for i, meta := range metas {
		acct, ok := e.ledger[meta.Key]
		if !ok {
			acct = e.NewSystemAccount(meta.Key, 0)
		}
		acct.IsSigner = meta.Signer
		acct.IsWritable = meta.Writable
		presented[i] = acct
		snapshots[i] = snapshot{
			lamports: acct.Lamports,
			data:     append([]byte(nil), acct.Data...),
		}
	}

	result, err := e.Runtime.Execute(e.ProgramID, presented, instructionData)
	if err != nil {
		for i, acct := range presented {
			acct.Lamports = snapshots[i].lamports
			acct.Data = snapshots[i].data
		}
	}
	for _, acct := range presented {
		acct.IsSigner = false
		acct.IsWritable = false
	}
	return result, err
}
