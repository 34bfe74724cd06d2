// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"fmt"

	"github.com/ava-labs/avalanchego/utils/logging"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/strongboxvm/strongbox/codec"
	"github.com/strongboxvm/strongbox/consts"
)

// Runtime is the sole public entry surface of a program: it routes one
// host-invoked instruction to its handler. Execution is single-threaded
// per invocation; the host serializes transactions touching the same
// accounts and discards every effect of a failed instruction, so the
// runtime carries no locking and no partial-commit path.
type Runtime struct {
	log      logging.Logger
	registry *Registry
	rent     Rent
	metrics  *metrics
}

func New(
	registry *Registry,
	rent Rent,
	log logging.Logger,
	metricsReg prometheus.Registerer,
) (*Runtime, error) {
	m, err := newMetrics(metricsReg)
	if err != nil {
		return nil, err
	}
	return &Runtime{
		log:      log,
		registry: registry,
		rent:     rent,
		metrics:  m,
	}, nil
}

// Execute decodes instructionData, validates the presented accounts
// against the instruction's declared constraints, and runs the handler.
// Every failure is surfaced to the host verbatim; the host aborts the
// surrounding transaction.
func (r *Runtime) Execute(
	programID codec.Address,
	accounts []*Account,
	instructionData []byte,
) (codec.Typed, error) {
	if len(instructionData) < consts.ByteLen {
		return nil, r.reject(fmt.Errorf("%w: empty instruction data", ErrUnknownInstruction))
	}
	typeID := instructionData[0]
	decode, ok := r.registry.LookupIndex(typeID)
	if !ok {
		return nil, r.reject(fmt.Errorf("%w: typeID %d", ErrUnknownInstruction, typeID))
	}
	instruction, err := decode(instructionData[consts.ByteLen:])
	if err != nil {
		return nil, r.reject(fmt.Errorf("%w: typeID %d: %s", ErrMalformedArgs, typeID, err))
	}
	if err := validateAccounts(programID, instruction.Accounts(), accounts); err != nil {
		return nil, r.reject(err)
	}

	r.metrics.dispatched.Inc()
	r.log.Debug("dispatching instruction",
		zap.Uint8("typeID", typeID),
		zap.Stringer("program", programID),
		zap.Int("accounts", len(accounts)),
	)

	ctx := &Context{
		ProgramID: programID,
		Rent:      r.rent,
		Log:       r.log,
	}
	result, err := instruction.Execute(ctx, accounts)
	if err != nil {
		return nil, r.reject(err)
	}
	return result, nil
}

func (r *Runtime) reject(err error) error {
	r.metrics.rejected.Inc()
	r.log.Warn("instruction aborted", zap.Error(err))
	return err
}
