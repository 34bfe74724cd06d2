// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var (
	ErrInvalidSize   = errors.New("invalid size")
	ErrInvalidSeeds  = errors.New("unable to derive program address")
	ErrTrailingBytes = errors.New("trailing bytes after deserialization")
)
