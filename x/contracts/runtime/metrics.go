// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package runtime

import "github.com/prometheus/client_golang/prometheus"

const (
	lookupPriced   = "priced"
	lookupFallback = "fallback"
	lookupRejected = "rejected"
)

// Metrics counts instruction cost lookups by outcome.
type Metrics struct {
	lookups *prometheus.CounterVec
}

// NewMetrics registers the lookup counters with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "instruction_cost_lookups_total",
				Help: "number of instruction cost lookups by result",
			},
			[]string{"result"},
		),
	}
	if err := reg.Register(m.lookups); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(result string) {
	if m == nil {
		return
	}
	m.lookups.WithLabelValues(result).Inc()
}
