// Package metrics defines the service's Prometheus collectors. They are
// registered on the metrics server's registry at startup.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	ForegroundEventsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_foreground_events_total",
		Help: "Total number of foreground-app-changed events received",
	})

	RedirectsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_redirects_total",
		Help: "Total number of redirect actions issued for blocked apps",
	})

	DebounceSuppressedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_debounce_suppressed_total",
		Help: "Total number of redirects suppressed by the debounce cooldown",
	})

	EventResolutionFailuresTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_event_resolution_failures_total",
		Help: "Total number of foreground events dropped because the app could not be resolved",
	})

	TimerStartsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_timer_starts_total",
		Help: "Total number of craving-resistance timers started",
	})

	RelapsesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_relapses_total",
		Help: "Total number of recorded relapses",
	})

	OvercomesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "craving_intervention_overcomes_total",
		Help: "Total number of recorded overcome cravings",
	})
)

// Register registers all domain collectors on the given registry.
func Register(registry *prometheus.Registry) {
	registry.MustRegister(
		ForegroundEventsTotal,
		RedirectsTotal,
		DebounceSuppressedTotal,
		EventResolutionFailuresTotal,
		TimerStartsTotal,
		RelapsesTotal,
		OvercomesTotal,
	)
}
