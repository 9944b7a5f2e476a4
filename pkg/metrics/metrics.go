/**
 *
 * (c) Copyright Ascensio System SIA 2023
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const (
	OutcomeHandled   = "handled"
	OutcomeUnhandled = "unhandled"
)

// DispatchMetrics collects chain dispatch counters.
type DispatchMetrics struct {
	dispatched *prometheus.CounterVec
	latency    prometheus.Histogram
}

// NewDispatchMetrics registers dispatch collectors on reg.
func NewDispatchMetrics(reg prometheus.Registerer) (*DispatchMetrics, error) {
	m := &DispatchMetrics{
		dispatched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "chain",
			Name:      "dispatch_total",
			Help:      "Number of dispatched requests by accepting handler and outcome.",
		}, []string{"handler", "outcome"}),
		latency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "chain",
			Name:      "dispatch_duration_seconds",
			Help:      "Time spent walking the chain.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 10, 6),
		}),
	}

	for _, c := range []prometheus.Collector{m.dispatched, m.latency} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// NewRegistry is the registry provided to the application.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// Observe records one dispatch. handler is empty for unhandled requests.
func (m *DispatchMetrics) Observe(handler string, handled bool, elapsed time.Duration) {
	outcome := OutcomeUnhandled
	if handled {
		outcome = OutcomeHandled
	}

	m.dispatched.WithLabelValues(handler, outcome).Inc()
	m.latency.Observe(elapsed.Seconds())
}

// Dispatched returns the counter for handler and outcome.
func (m *DispatchMetrics) Dispatched(handler, outcome string) prometheus.Counter {
	return m.dispatched.WithLabelValues(handler, outcome)
}

// Write gathers every metric family from g and writes them to w in the
// Prometheus text exposition format.
func Write(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}

	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
