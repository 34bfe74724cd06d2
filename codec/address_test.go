// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddressTextRoundTrip(t *testing.T) {
	require := require.New(t)

	a := Address{0x01, 0x02, 0x03, 0xff}
	text, err := a.MarshalText()
	require.NoError(err)

	var parsed Address
	require.NoError(parsed.UnmarshalText(text))
	require.Equal(a, parsed)
}

func TestAddressUnmarshalWrongLength(t *testing.T) {
	require := require.New(t)

	var a Address
	require.ErrorIs(a.UnmarshalText([]byte("abc")), ErrInvalidSize)
	require.ErrorIs(a.UnmarshalText([]byte("")), ErrInvalidSize)
}

func TestToAddress(t *testing.T) {
	require := require.New(t)

	b := make([]byte, AddressLen)
	b[0] = 7
	a, err := ToAddress(b)
	require.NoError(err)
	require.Equal(byte(7), a[0])

	_, err = ToAddress(b[:AddressLen-1])
	require.ErrorIs(err, ErrInvalidSize)
	_, err = ToAddress(append(b, 0))
	require.ErrorIs(err, ErrInvalidSize)
}

func TestFindProgramAddressDeterministic(t *testing.T) {
	require := require.New(t)

	program := Address{0xaa}
	owner := Address{0xbb}

	first, firstBump, err := FindProgramAddress(program, []byte("VAULT"), owner[:])
	require.NoError(err)
	second, secondBump, err := FindProgramAddress(program, []byte("VAULT"), owner[:])
	require.NoError(err)
	require.Equal(first, second)
	require.Equal(firstBump, secondBump)

	// The stored bump must reproduce the derivation exactly.
	created, err := CreateProgramAddress(program, firstBump, []byte("VAULT"), owner[:])
	require.NoError(err)
	require.Equal(first, created)
}

func TestFindProgramAddressDistinct(t *testing.T) {
	require := require.New(t)

	program := Address{0xaa}
	a, _, err := FindProgramAddress(program, []byte("VAULT"), []byte{1})
	require.NoError(err)
	b, _, err := FindProgramAddress(program, []byte("VAULT"), []byte{2})
	require.NoError(err)
	require.NotEqual(a, b)

	other, _, err := FindProgramAddress(Address{0xcc}, []byte("VAULT"), []byte{1})
	require.NoError(err)
	require.NotEqual(a, other)
}
