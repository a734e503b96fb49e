/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package plan

import (
	"strings"

	"github.com/hpckit/qsend/pkg/config"
)

// BigmemPartition is the partition selected when a job on the threshold
// cluster exceeds its per-task memory threshold.
const BigmemPartition = "bigmem"

// FallbackPartition is used for clusters whose profile sets no partition.
const FallbackPartition = "normal"

// PartitionStrategy selects a partition for a job on one cluster.
type PartitionStrategy func(profile *config.ClusterProfile, cores int, memoryGB float64) string

// partitionStrategies maps cluster names to their partition selection
// strategies. Only the threshold cluster has a special rule; every other
// cluster uses its configured partition. The asymmetry is deliberate and must
// survive refactors: the rule is keyed to the cluster identifier, not to the
// presence of a bigmem_threshold.
var partitionStrategies = map[string]PartitionStrategy{
	config.ThresholdCluster: bigmemStrategy,
}

// SelectPartition returns the partition for a job on the named cluster.
// Callers apply it only when the chosen template contains the {partition}
// placeholder; see NeedsPartition.
func SelectPartition(profile *config.ClusterProfile, cluster string, cores int, memoryGB float64) string {
	if strategy, ok := partitionStrategies[cluster]; ok {
		return strategy(profile, cores, memoryGB)
	}
	if profile.Partition != "" {
		return profile.Partition
	}
	return FallbackPartition
}

// NeedsPartition reports whether the template references {partition}.
func NeedsPartition(template string) bool {
	return strings.Contains(template, "{partition}")
}

// bigmemStrategy promotes memory-heavy jobs to the bigmem partition.
//
// Effective per-task memory is memory_gb for a single task, otherwise
// memory_gb / (cores / 2) computed in real numbers. The halved divisor and
// its asymmetry for odd core counts are inherited behavior; keep the float
// division exactly as written.
func bigmemStrategy(profile *config.ClusterProfile, cores int, memoryGB float64) string {
	perTask := memoryGB
	if cores > 1 {
		perTask = memoryGB / (float64(cores) / 2)
	}
	if profile.BigmemThreshold != nil && perTask > *profile.BigmemThreshold {
		bigmemPromotions.Inc()
		return BigmemPartition
	}
	return profile.Partition
}
