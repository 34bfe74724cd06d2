// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"
)

// Record layout: a 1-byte discriminant identifying the record kind,
// followed by the borsh encoding of the record body. Total size is
// fixed per kind; the layout is the persisted-state format and must
// remain stable across program upgrades.
const (
	// Uninitialized is the sentinel discriminant of an account region
	// that has never been written (zeroed storage decodes to it).
	Uninitialized byte = 0

	CounterDiscriminant byte = 1
	VaultDiscriminant   byte = 2
)

// AnyKind is the AccountSpec wildcard: no discriminant constraint.
const AnyKind = consts.MaxUint8

// Kind reports the discriminant of an account data region. Empty
// regions (not yet allocated) report Uninitialized.
func Kind(data []byte) byte {
	if len(data) == 0 {
		return Uninitialized
	}
	return data[0]
}

func decodeRecord[T any](data []byte, discriminant byte, size int) (*T, error) {
	if len(data) < size {
		return nil, ErrTruncated
	}
	switch data[0] {
	case discriminant:
	case Uninitialized:
		return nil, ErrNotInitialized
	default:
		return nil, ErrWrongKind
	}
	return codec.Deserialize[T](data[1:size])
}

func encodeRecord[T any](record T, dst []byte, discriminant byte, size int) error {
	if len(dst) < size {
		return ErrTruncated
	}
	body, err := codec.Serialize(record)
	if err != nil {
		return err
	}
	dst[0] = discriminant
	copy(dst[1:size], body)
	return nil
}
