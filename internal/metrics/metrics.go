// Package metrics exposes prometheus counters for the effect engine, combat
// driver, and shop subsystem. There is no HTTP exporter here — the engine is
// headless and an HTTP surface is out of scope — but the counters are real
// and gathered the same way the teacher repo wires client_golang in
// internal/api/observability.go, minus the promhttp handler.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Registry is a private prometheus registry so library consumers embedding
// this engine never collide with their own default-registry metrics.
var Registry = prometheus.NewRegistry()

var (
	// TriggersFired counts (pet, effect) pairs executed by the effect engine.
	TriggersFired = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sap_triggers_fired_total",
		Help: "Total number of (pet, effect) pairs executed by the effect engine.",
	})
	// PhasesRun counts combat phases (one round of simultaneous attacks).
	PhasesRun = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sap_combat_phases_total",
		Help: "Total number of combat phases executed.",
	})
	// RNGDraws counts calls into a team's deterministic random source.
	RNGDraws = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sap_rng_draws_total",
		Help: "Total number of draws from team RNG sources.",
	})
	// ShopOperations counts shop state-machine transitions (roll, buy, sell, freeze, open, close).
	ShopOperations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sap_shop_operations_total",
		Help: "Total number of shop operations by kind.",
	}, []string{"op"})
	// RuntimeBudgetExceeded counts phases/operations aborted by the step guard.
	RuntimeBudgetExceeded = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "sap_runtime_budget_exceeded_total",
		Help: "Total number of times the engine step guard aborted a phase.",
	})
)

func init() {
	Registry.MustRegister(TriggersFired, PhasesRun, RNGDraws, ShopOperations, RuntimeBudgetExceeded)
}

// Gather returns the current metric families, for callers that want to log
// or export them without standing up an HTTP endpoint.
func Gather() ([]*dto.MetricFamily, error) {
	return Registry.Gather()
}
