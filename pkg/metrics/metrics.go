// Copyright 2025 Formstate Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Component labels.
const (
	ComponentReducer  = "reducer"
	ComponentPipeline = "pipeline"
	ComponentHostScan = "host_scan"
)

// Outcome labels for dispatched actions.
const (
	OutcomeChanged = "changed"
	OutcomeNoop    = "noop"
)

var (
	// Namespace and subsystem for all metrics.
	namespace = "formstate"
	subsystem = "core"

	// Dispatched action counter by type and outcome.
	actionCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "actions_total",
			Help:      "Total number of dispatched actions by action type and outcome",
		},
		[]string{"component", "action_type", "outcome"},
	)

	// Reduction timing.
	reduceTime = promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "reduce_duration_milliseconds",
			Help:      "Time taken to reduce one action (in milliseconds)",
			Objectives: map[float64]float64{
				0.5:  0.01, // 50th percentile with 1% error
				0.9:  0.01, // 90th percentile with 1% error
				0.95: 0.01, // 95th percentile with 1% error
				0.99: 0.01, // 99th percentile with 1% error
			},
		},
		[]string{"component"},
	)

	// Precondition failure counter.
	preconditionFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "precondition_failures_total",
			Help:      "Total number of root precondition failures (uninitialized or foreign state)",
		},
		[]string{"component"},
	)
)

// ObserveAction records a dispatched action and whether it changed the tree.
func ObserveAction(component, actionType string, changed bool) {
	outcome := OutcomeNoop
	if changed {
		outcome = OutcomeChanged
	}

	actionCounter.WithLabelValues(component, actionType, outcome).Inc()
}

// ObserveReduceTime records the duration of one reduction.
func ObserveReduceTime(component string, duration time.Duration) {
	reduceTime.WithLabelValues(component).Observe(float64(duration.Milliseconds()))
}

// IncPreconditionFailure records a root precondition failure.
func IncPreconditionFailure(component string) {
	preconditionFailures.WithLabelValues(component).Inc()
}

// Handler returns the HTTP handler exposing this module's metrics; hosts
// mount it wherever they serve telemetry. The library itself never opens a
// listener.
func Handler() http.Handler {
	return promhttp.Handler()
}
