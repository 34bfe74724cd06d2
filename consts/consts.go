// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name   = "strongbox"
	Symbol = "SBX"

	ByteLen   = 1
	Uint64Len = 8
	MaxUint8  = ^uint8(0)
	MaxUint64 = ^uint64(0)
)
