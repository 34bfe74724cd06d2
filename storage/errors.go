// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import "errors"

var (
	ErrTruncated      = errors.New("account data smaller than record layout")
	ErrWrongKind      = errors.New("account holds a different record kind")
	ErrNotInitialized = errors.New("account not initialized")

	ErrOverflow          = errors.New("overflow")
	ErrUnderflow         = errors.New("underflow")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
