package network

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultSuccess = "success"
	resultFailure = "failure"
	resultPanic   = "panic"
)

var (
	initTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netset",
			Name:      "initializations_total",
			Help:      "Network set initialization runs by set and result",
		},
		[]string{"set", "result"},
	)

	registeredTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netset",
			Name:      "registered_networks_total",
			Help:      "Networks published by successful set initializations",
		},
		[]string{"set"},
	)
)

// Collectors returns the package's prometheus collectors.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{initTotal, registeredTotal}
}

// RegisterMetrics registers the package's collectors with reg, or with
// prometheus.DefaultRegisterer when reg is nil.
func RegisterMetrics(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}
