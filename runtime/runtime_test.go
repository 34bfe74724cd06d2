// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"errors"
	"testing"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/storage"
)

const mockID uint8 = 0x2a

var errMockFailed = errors.New("mock handler failed")

var _ Instruction = (*mockInstruction)(nil)

type mockInstruction struct {
	Amount uint64
}

func (*mockInstruction) GetTypeID() uint8 {
	return mockID
}

func (*mockInstruction) Accounts() []AccountSpec {
	return []AccountSpec{
		{Name: "target", Writable: true, ProgramOwned: true, Kind: storage.AnyKind},
	}
}

func (m *mockInstruction) Execute(_ *Context, accounts []*Account) (codec.Typed, error) {
	if m.Amount == 0 {
		return nil, errMockFailed
	}
	accounts[0].Lamports += m.Amount
	return &mockResult{Lamports: accounts[0].Lamports}, nil
}

type mockResult struct {
	Lamports uint64
}

func (*mockResult) GetTypeID() uint8 {
	return mockID
}

func newTestRuntime(t *testing.T) *Runtime {
	t.Helper()
	require := require.New(t)

	registry := NewRegistry()
	require.NoError(registry.Register(mockID, Unmarshal[mockInstruction]()))

	r, err := New(registry, DefaultRent, logging.NoLog{}, prometheus.NewRegistry())
	require.NoError(err)
	return r
}

func TestMarshalWireFormat(t *testing.T) {
	require := require.New(t)

	// [typeID uint8] || borsh(args): a bare little-endian u64, no
	// option tag for the pointer the instruction is registered as.
	data, err := Marshal(&mockInstruction{Amount: 3})
	require.NoError(err)
	require.Equal([]byte{mockID, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, data)
}

func TestExecuteSuccess(t *testing.T) {
	require := require.New(t)
	r := newTestRuntime(t)

	target := &Account{Key: codec.Address{7}, Owner: testProgramID, IsWritable: true}
	data, err := Marshal(&mockInstruction{Amount: 3})
	require.NoError(err)

	result, err := r.Execute(testProgramID, []*Account{target}, data)
	require.NoError(err)
	require.Equal(&mockResult{Lamports: 3}, result)
	require.Equal(uint64(3), target.Lamports)
}

func TestExecuteUnknownInstruction(t *testing.T) {
	require := require.New(t)
	r := newTestRuntime(t)

	_, err := r.Execute(testProgramID, nil, nil)
	require.ErrorIs(err, ErrUnknownInstruction)

	_, err = r.Execute(testProgramID, nil, []byte{0x99})
	require.ErrorIs(err, ErrUnknownInstruction)
}

func TestExecuteMalformedArgs(t *testing.T) {
	require := require.New(t)
	r := newTestRuntime(t)

	// Payload shorter than the args layout.
	_, err := r.Execute(testProgramID, nil, []byte{mockID, 0x01})
	require.ErrorIs(err, ErrMalformedArgs)

	// Trailing bytes after the args layout.
	data, err := Marshal(&mockInstruction{Amount: 1})
	require.NoError(err)
	_, err = r.Execute(testProgramID, nil, append(data, 0x00))
	require.ErrorIs(err, ErrMalformedArgs)
}

func TestExecuteValidationRejection(t *testing.T) {
	require := require.New(t)
	r := newTestRuntime(t)

	foreign := &Account{Owner: otherProgram, IsWritable: true}
	data, err := Marshal(&mockInstruction{Amount: 3})
	require.NoError(err)

	_, err = r.Execute(testProgramID, []*Account{foreign}, data)
	require.ErrorIs(err, ErrNotOwned)
	require.Zero(foreign.Lamports)
}

func TestExecuteHandlerError(t *testing.T) {
	require := require.New(t)
	r := newTestRuntime(t)

	target := &Account{Owner: testProgramID, IsWritable: true}
	data, err := Marshal(&mockInstruction{Amount: 0})
	require.NoError(err)

	_, err = r.Execute(testProgramID, []*Account{target}, data)
	require.ErrorIs(err, errMockFailed)
}

func TestRegistryDuplicate(t *testing.T) {
	require := require.New(t)

	registry := NewRegistry()
	require.NoError(registry.Register(mockID, Unmarshal[mockInstruction]()))
	require.ErrorIs(registry.Register(mockID, Unmarshal[mockInstruction]()), ErrDuplicateItem)
}
