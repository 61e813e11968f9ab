package userapi

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts resolutions per operation and outcome. For avatars the
// outcome is the user.AvatarSource; other operations report "ok".
type Metrics struct {
	Resolutions *prometheus.CounterVec
	BadRequests *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userkit",
			Name:      "resolutions_total",
			Help:      "Resolutions served, by operation and outcome.",
		}, []string{"operation", "outcome"}),
		BadRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "userkit",
			Name:      "bad_requests_total",
			Help:      "Requests rejected for invalid parameters, by operation.",
		}, []string{"operation"}),
	}
	reg.MustRegister(m.Resolutions, m.BadRequests)
	return m
}

func (m *Metrics) resolved(op, outcome string) {
	m.Resolutions.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) rejected(op string) {
	m.BadRequests.WithLabelValues(op).Inc()
}
