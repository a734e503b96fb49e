/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

// ClusterProfile is a named bundle of submission settings for one cluster:
// the default partition, the remote staging directory, an optional big-memory
// threshold, and the set of named submission templates ("targets").
//
// A profile is only usable when Targets contains a "default" entry.
type ClusterProfile struct {
	Partition       string            `json:"partition,omitempty" yaml:"partition,omitempty"`
	RemoteDir       string            `json:"remote_dir" yaml:"remote_dir"`
	BigmemThreshold *float64          `json:"bigmem_threshold,omitempty" yaml:"bigmem_threshold,omitempty"`
	Targets         map[string]string `json:"targets" yaml:"targets"`
}

// Clone returns a deep copy of the profile. Synthesized profiles must not
// share the Targets map with the template they were cloned from.
func (p *ClusterProfile) Clone() *ClusterProfile {
	if p == nil {
		return nil
	}
	out := &ClusterProfile{
		Partition: p.Partition,
		RemoteDir: p.RemoteDir,
	}
	if p.BigmemThreshold != nil {
		v := *p.BigmemThreshold
		out.BigmemThreshold = &v
	}
	if p.Targets != nil {
		out.Targets = make(map[string]string, len(p.Targets))
		for k, v := range p.Targets {
			out.Targets[k] = v
		}
	}
	return out
}

// GlobalConfig is the full configuration document: submission defaults, the
// known cluster profiles, and the template profile used to synthesize entries
// for clusters that are not listed.
type GlobalConfig struct {
	DefaultCluster       string                     `json:"default_cluster" yaml:"default_cluster"`
	DefaultCores         int                        `json:"default_cores" yaml:"default_cores"`
	DefaultMemory        float64                    `json:"default_memory" yaml:"default_memory"`
	Clusters             map[string]*ClusterProfile `json:"clusters" yaml:"clusters"`
	DefaultClusterConfig *ClusterProfile            `json:"default_cluster_config" yaml:"default_cluster_config"`
}

// Clone returns a deep copy of the configuration.
func (c *GlobalConfig) Clone() *GlobalConfig {
	if c == nil {
		return nil
	}
	out := &GlobalConfig{
		DefaultCluster:       c.DefaultCluster,
		DefaultCores:         c.DefaultCores,
		DefaultMemory:        c.DefaultMemory,
		DefaultClusterConfig: c.DefaultClusterConfig.Clone(),
	}
	if c.Clusters != nil {
		out.Clusters = make(map[string]*ClusterProfile, len(c.Clusters))
		for k, v := range c.Clusters {
			out.Clusters[k] = v.Clone()
		}
	}
	return out
}
