/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

// ThresholdCluster is the one cluster whose partition is chosen from the
// memory-per-task heuristic rather than the configured default partition.
const ThresholdCluster = "alpine"

// builtinBigmemThreshold is the per-task memory (GB) above which jobs on the
// threshold cluster land on the bigmem partition.
const builtinBigmemThreshold = 10.0

// Builtin returns the built-in default configuration. Loading merges an
// optional user-supplied override file over this value, top-level key by
// top-level key.
func Builtin() *GlobalConfig {
	threshold := builtinBigmemThreshold
	return &GlobalConfig{
		DefaultCluster: ThresholdCluster,
		DefaultCores:   1,
		DefaultMemory:  4,
		Clusters: map[string]*ClusterProfile{
			ThresholdCluster: {
				Partition:       "amilan",
				RemoteDir:       "scratch/submit",
				BigmemThreshold: &threshold,
				Targets: map[string]string{
					"default": "sbatch --partition={partition} --ntasks={cores} --mem={memory} {filename}",
					"debug":   "sbatch --partition={partition} --qos=debug --ntasks={cores} --mem={memory} {filename}",
					"gpu":     "sbatch --partition=aa100 --gres=gpu:1 --ntasks={cores} --mem={memory} {filename}",
				},
			},
			"summit": {
				Partition: "shas",
				RemoteDir: "projects/submit",
				Targets: map[string]string{
					"default": "sbatch --partition={partition} --ntasks={cores} --mem={memory} {filename}",
				},
			},
		},
		DefaultClusterConfig: &ClusterProfile{
			Partition: "normal",
			RemoteDir: "scratch/submit",
			Targets: map[string]string{
				"default": "sbatch --partition={partition} --ntasks={cores} --mem={memory} {filename}",
			},
		},
	}
}
