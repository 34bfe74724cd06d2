// Copyright (C) 2025, Strongbox Project. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	dispatched prometheus.Counter
	rejected   prometheus.Counter
}

func newMetrics(r prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		dispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "instructions_dispatched",
			Help:      "instructions routed to a handler",
		}),
		rejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "runtime",
			Name:      "instructions_rejected",
			Help:      "instructions aborted by validation or a handler",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		r.Register(m.dispatched),
		r.Register(m.rejected),
	)
	return m, errs.Err
}
