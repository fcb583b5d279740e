// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
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

package simulator

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Simulation outcomes used as metric labels.
const (
	outcomeMatched    = "matched"
	outcomeAmbiguous  = "ambiguous"
	outcomeEmpty      = "empty"
	outcomeUnresolved = "unresolved"
)

var (
	simulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cookpot_simulations_total",
			Help: "Total number of simulations by station and outcome",
		},
		[]string{"station", "outcome"},
	)

	simulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookpot_simulation_duration_seconds",
			Help:    "Duration of a single simulation in seconds",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		},
	)

	batchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cookpot_simulation_batch_size",
			Help:    "Number of simulations per batch request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		},
	)
)

func outcomeOf(res *Result) string {
	switch {
	case res.Empty():
		return outcomeEmpty
	case res.Ambiguous:
		return outcomeAmbiguous
	default:
		return outcomeMatched
	}
}
