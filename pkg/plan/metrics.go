// Copyright (c) 2025, HPCKit Authors.  All rights reserved.
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

package plan

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Plan resolution metrics
	planBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "qsend_plan_build_duration_seconds",
			Help:    "Duration of command plan resolution in seconds",
			Buckets: []float64{0.001, 0.01, 0.1, 1, 5},
		},
	)

	// Resolution fallback metrics
	targetFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qsend_target_fallback_total",
			Help: "Total number of unknown targets that fell back to default",
		},
	)
	bigmemPromotions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "qsend_bigmem_promotion_total",
			Help: "Total number of jobs promoted to the bigmem partition",
		},
	)
)
