// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/runtimetest"
	"github.com/strongboxvm/strongbox/storage"
)

var (
	testProgramID  = codec.Address{0x53, 0x42, 0x58} // "SBX"
	otherProgramID = codec.Address{0x99}
)

const testFunding = 10_000_000_000

func newTestEnv(t *testing.T) *runtimetest.Env {
	t.Helper()
	require := require.New(t)

	registry, err := NewRegistry()
	require.NoError(err)
	env, err := runtimetest.New(testProgramID, registry)
	require.NoError(err)
	return env
}

func newFundedUser(t *testing.T, env *runtimetest.Env, lamports uint64) codec.Address {
	t.Helper()
	_, addr, err := runtimetest.GenerateKey()
	require.NoError(t, err)
	env.NewSystemAccount(addr, lamports)
	return addr
}

// newCounter initializes a counter record authored by authority.
func newCounter(t *testing.T, env *runtimetest.Env, authority codec.Address, start uint64) codec.Address {
	t.Helper()
	require := require.New(t)

	_, key, err := runtimetest.GenerateKey()
	require.NoError(err)
	env.NewProgramAccount(key)

	_, err = env.Process(
		&InitializeCounter{HasStart: true, Start: start},
		runtimetest.AccountMeta{Key: authority, Signer: true},
		runtimetest.AccountMeta{Key: key, Writable: true},
	)
	require.NoError(err)
	return key
}

func vaultKey(t *testing.T, owner codec.Address) (codec.Address, uint8) {
	t.Helper()
	key, bump, err := codec.FindProgramAddress(testProgramID, storage.VaultSeed, owner[:])
	require.NoError(t, err)
	return key, bump
}

// newVault initializes a vault for owner with the given starting deposit.
func newVault(t *testing.T, env *runtimetest.Env, owner codec.Address, start uint64) codec.Address {
	t.Helper()
	require := require.New(t)

	key, _ := vaultKey(t, owner)
	env.NewProgramAccount(key)

	_, err := env.Process(
		&InitializeVault{HasStart: true, Start: start},
		runtimetest.AccountMeta{Key: owner, Signer: true, Writable: true},
		runtimetest.AccountMeta{Key: key, Writable: true},
	)
	require.NoError(err)
	return key
}

func decodeCounter(t *testing.T, env *runtimetest.Env, key codec.Address) *storage.Counter {
	t.Helper()
	record, err := storage.DecodeCounter(env.Account(key).Data)
	require.NoError(t, err)
	return record
}

func decodeVault(t *testing.T, env *runtimetest.Env, key codec.Address) *storage.Vault {
	t.Helper()
	record, err := storage.DecodeVault(env.Account(key).Data)
	require.NoError(t, err)
	return record
}

func rentFloor(env *runtimetest.Env) uint64 {
	return env.Rent.MinimumBalance(storage.VaultSize)
}
