// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"fmt"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"

	smath "github.com/ava-labs/avalanchego/utils/math"
)

// CounterSize is the fixed byte length of an initialized counter region.
const CounterSize = consts.ByteLen + codec.AddressLen + consts.Uint64Len

// Counter is the record persisted in a counter account.
type Counter struct {
	// Authority is the only identity permitted to mutate Count.
	Authority codec.Address

	// Count is the current value.
	Count uint64
}

func DecodeCounter(data []byte) (*Counter, error) {
	return decodeRecord[Counter](data, CounterDiscriminant, CounterSize)
}

// Encode writes the discriminant-tagged record into dst. It fails only
// if dst is smaller than the fixed layout.
func (c *Counter) Encode(dst []byte) error {
	return encodeRecord(*c, dst, CounterDiscriminant, CounterSize)
}

// Add increases Count by delta with checked arithmetic. On overflow the
// record is unchanged.
func (c *Counter) Add(delta uint64) error {
	ncount, err := smath.Add64(c.Count, delta)
	if err != nil {
		return fmt.Errorf("%w: count=%d delta=%d", ErrOverflow, c.Count, delta)
	}
	c.Count = ncount
	return nil
}

// Sub decreases Count by delta with checked arithmetic. On underflow
// the record is unchanged.
func (c *Counter) Sub(delta uint64) error {
	ncount, err := smath.Sub(c.Count, delta)
	if err != nil {
		return fmt.Errorf("%w: count=%d delta=%d", ErrUnderflow, c.Count, delta)
	}
	c.Count = ncount
	return nil
}
