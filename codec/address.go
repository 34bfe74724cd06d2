// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"crypto/sha256"

	"filippo.io/edwards25519"
	"github.com/btcsuite/btcd/btcutil/base58"
)

const AddressLen = 32

// Address is the 32-byte identity of an account: either an ed25519
// public key or a program-derived address.
type Address [AddressLen]byte

var EmptyAddress = Address{}

// pdaMarker domain-separates program-derived addresses from public keys.
const pdaMarker = "StrongboxProgramDerivedAddress"

// ToAddress copies b into an Address. b must be exactly AddressLen bytes.
func ToAddress(b []byte) (Address, error) {
	if len(b) != AddressLen {
		return EmptyAddress, ErrInvalidSize
	}
	var a Address
	copy(a[:], b)
	return a, nil
}

// CreateProgramAddress derives the address for [seeds] + [bump] under
// [program]. It fails with [ErrInvalidSeeds] if the derived point lies
// on the ed25519 curve, so a derived address can never collide with a
// signable public key.
func CreateProgramAddress(program Address, bump uint8, seeds ...[]byte) (Address, error) {
	h := sha256.New()
	for _, seed := range seeds {
		h.Write(seed)
	}
	h.Write([]byte{bump})
	h.Write(program[:])
	h.Write([]byte(pdaMarker))
	var a Address
	copy(a[:], h.Sum(nil))
	if _, err := new(edwards25519.Point).SetBytes(a[:]); err == nil {
		return EmptyAddress, ErrInvalidSeeds
	}
	return a, nil
}

// FindProgramAddress searches bumps from 255 downward for the first
// off-curve derivation of [seeds] under [program].
func FindProgramAddress(program Address, seeds ...[]byte) (Address, uint8, error) {
	for bump := int(^uint8(0)); bump >= 0; bump-- {
		a, err := CreateProgramAddress(program, uint8(bump), seeds...)
		if err == nil {
			return a, uint8(bump), nil
		}
	}
	return EmptyAddress, 0, ErrInvalidSeeds
}

// String implements fmt.Stringer using the base58 alphabet.
func (a Address) String() string {
	return base58.Encode(a[:])
}

// MarshalText returns the base58 representation of a.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses a base58-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	decoded := base58.Decode(string(input))
	if len(decoded) != AddressLen {
		return ErrInvalidSize
	}
	copy(a[:], decoded)
	return nil
}
