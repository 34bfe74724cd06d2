// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"github.com/near/borsh-go"
)

// Serialize encodes value with borsh. Borsh is canonical: a given value
// has exactly one encoding, which keeps persisted layouts stable.
func Serialize[T any](value T) ([]byte, error) {
	return borsh.Serialize(value)
}

// Deserialize decodes data into a T. Unlike borsh.Deserialize, it
// rejects trailing bytes: the canonical re-encoding of the result must
// consume the entire input.
func Deserialize[T any](data []byte) (*T, error) {
	result := new(T)
	if err := borsh.Deserialize(result, data); err != nil {
		return nil, err
	}
	reencoded, err := borsh.Serialize(*result)
	if err != nil {
		return nil, err
	}
	if len(reencoded) != len(data) {
		return nil, ErrTrailingBytes
	}
	return result, nil
}
