// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "errors"

var (
	// Dispatch
	ErrUnknownInstruction = errors.New("unknown instruction")
	ErrMalformedArgs      = errors.New("malformed instruction args")
	ErrDuplicateItem      = errors.New("duplicate item")

	// Validation
	ErrMissingAccount     = errors.New("missing account")
	ErrNotOwned           = errors.New("account not owned by this program")
	ErrNotWritable        = errors.New("account not writable")
	ErrMissingSignature   = errors.New("required signature missing")
	ErrAlreadyInitialized = errors.New("account already initialized")
	ErrUnauthorized       = errors.New("signer is not the stored authority")

	// Host collaborators
	ErrInvalidFunder  = errors.New("funder is not system-owned")
	ErrInvalidAccount = errors.New("unexpected account")
)
