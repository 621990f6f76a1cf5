// Copyright (C) 2024-2026, the chia-blockchain authors. All rights reserved.
// See the file LICENSE for licensing terms.

package wallet

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/prayogimhd/chia-blockchain/utils/wrappers"
)

type metrics struct {
	spendsAuthorized   prometheus.Counter
	obligationsSigned  prometheus.Counter
	authorizationFails prometheus.Counter
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		spendsAuthorized: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spends_authorized",
			Help:      "Number of coin spends successfully authorized",
		}),
		obligationsSigned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "obligations_signed",
			Help:      "Number of individual signing obligations fulfilled",
		}),
		authorizationFails: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "authorization_fails",
			Help:      "Number of spends that could not be authorized",
		}),
	}

	errs := wrappers.Errs{}
	errs.Add(
		registerer.Register(m.spendsAuthorized),
		registerer.Register(m.obligationsSigned),
		registerer.Register(m.authorizationFails),
	)
	return m, errs.Err
}
