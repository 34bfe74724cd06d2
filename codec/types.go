// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

// Typed is implemented by any value identified by a closed uint8 tag
// (instructions, instruction results, account records).
type Typed interface {
	GetTypeID() uint8
}
