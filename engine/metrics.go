// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package engine

import "github.com/prometheus/client_golang/prometheus"

// Submission outcomes
const (
	outcomeAccepted      = "accepted"
	outcomeInvalid       = "invalid"
	outcomeUnknownPlayer = "unknown_player"
	outcomeError         = "error"
)

// Metrics counts what the engine does. A nil *Metrics records nothing.
type Metrics struct {
	submissions    *prometheus.CounterVec
	dayCloses      prometheus.Counter
	monthCloses    prometheus.Counter
	tieResolutions prometheus.Counter
	skippedShares  prometheus.Counter
}

// NewMetrics registers the engine counters. It returns nil when reg is
// nil, which disables them.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return nil
	}

	m := &Metrics{
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "linkgames",
			Name:      "submissions_total",
			Help:      "Daily result submissions by outcome.",
		}, []string{"outcome"}),
		dayCloses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "linkgames",
			Name:      "day_closes_total",
			Help:      "Days folded into the monthly scores.",
		}),
		monthCloses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "linkgames",
			Name:      "month_closes_total",
			Help:      "Months folded into the global leaderboard.",
		}),
		tieResolutions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "linkgames",
			Name:      "tie_resolutions_total",
			Help:      "Pending global ties settled by a later day.",
		}),
		skippedShares: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "linkgames",
			Name:      "skipped_daily_wins_total",
			Help:      "Daily wins not awarded because too many players tied.",
		}),
	}

	reg.MustRegister(m.submissions, m.dayCloses, m.monthCloses, m.tieResolutions, m.skippedShares)
	return m
}

func (m *Metrics) submission(outcome string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(outcome).Inc()
}

func (m *Metrics) dayClosed(resolved, skipped int) {
	if m == nil {
		return
	}
	m.dayCloses.Inc()
	m.tieResolutions.Add(float64(resolved))
	m.skippedShares.Add(float64(skipped))
}

func (m *Metrics) monthClosed() {
	if m == nil {
		return
	}
	m.monthCloses.Inc()
}
