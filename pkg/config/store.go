/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package config

import (
	"log/slog"

	"github.com/hpckit/qsend/pkg/errors"
)

// Store resolves cluster names to profiles against a loaded configuration.
//
// Resolution of an unknown cluster is a side-effecting read: the profile is
// synthesized from DefaultClusterConfig, cached in the in-memory config for
// the rest of the run, and never written back to disk. Repeated resolution of
// the same unknown name returns the same cached profile.
type Store struct {
	cfg *GlobalConfig
}

// NewStore creates a Store over cfg. The Store takes ownership of cfg's
// Clusters map for caching synthesized profiles.
func NewStore(cfg *GlobalConfig) *Store {
	return &Store{cfg: cfg}
}

// Config returns the configuration backing the store, including any profiles
// synthesized since the store was created.
func (s *Store) Config() *GlobalConfig {
	return s.cfg
}

// ResolveCluster returns the profile for name, synthesizing and caching one
// from DefaultClusterConfig when the cluster is not configured.
func (s *Store) ResolveCluster(name string) (*ClusterProfile, error) {
	if p, ok := s.cfg.Clusters[name]; ok {
		return p, nil
	}

	if s.cfg.DefaultClusterConfig == nil {
		return nil, errors.Newf(errors.ErrCodeNotFound,
			"cluster %q is not configured and no default_cluster_config is available", name)
	}

	p := s.cfg.DefaultClusterConfig.Clone()
	if s.cfg.Clusters == nil {
		s.cfg.Clusters = make(map[string]*ClusterProfile, 1)
	}
	s.cfg.Clusters[name] = p
	slog.Debug("synthesized profile for unknown cluster", "cluster", name, "partition", p.Partition)
	return p, nil
}
