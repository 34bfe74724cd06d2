// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"

	"github.com/strongboxvm/strongbox/consts"
	"github.com/strongboxvm/strongbox/runtime"
)

// NewRegistry returns the program's full instruction set.
func NewRegistry() (*runtime.Registry, error) {
	r := runtime.NewRegistry()
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(consts.InitializeCounterID, runtime.Unmarshal[InitializeCounter]()),
		r.Register(consts.IncrementID, runtime.Unmarshal[Increment]()),
		r.Register(consts.DecrementID, runtime.Unmarshal[Decrement]()),
		r.Register(consts.InitializeVaultID, runtime.Unmarshal[InitializeVault]()),
		r.Register(consts.DepositID, runtime.Unmarshal[Deposit]()),
		r.Register(consts.WithdrawID, runtime.Unmarshal[Withdraw]()),
		r.Register(consts.CloseVaultID, runtime.Unmarshal[CloseVault]()),
	)
	return r, errs.Err
}
