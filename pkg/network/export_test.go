package network

import "github.com/prometheus/client_golang/prometheus"

// InitCounter exposes the initialization counter of set and result to
// external tests.
func InitCounter(set, result string) prometheus.Counter {
	return initTotal.WithLabelValues(set, result)
}
