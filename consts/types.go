// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	// Instruction TypeIDs
	InitializeCounterID uint8 = 0
	IncrementID         uint8 = 1
	DecrementID         uint8 = 2
	InitializeVaultID   uint8 = 3
	DepositID           uint8 = 4
	WithdrawID          uint8 = 5
	CloseVaultID        uint8 = 6
)
