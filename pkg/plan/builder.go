/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package plan

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/errors"
	"github.com/hpckit/qsend/pkg/job"
)

// Builder resolves job specs into command plans against a config store.
type Builder struct {
	store *config.Store
}

// NewBuilder creates a Builder over store. The store's cluster cache is
// shared across all builds from this builder.
func NewBuilder(store *config.Store) *Builder {
	return &Builder{store: store}
}

// Build produces the ordered command plan for specs. Each spec is resolved
// independently; the first resolution failure aborts the build.
func (b *Builder) Build(specs []*job.Spec) (*Plan, error) {
	start := time.Now()
	defer func() {
		planBuildDuration.Observe(time.Since(start).Seconds())
	}()

	p := &Plan{Commands: make([]*ResolvedCommand, 0, len(specs))}
	for _, s := range specs {
		rc, err := b.resolve(s)
		if err != nil {
			return nil, err
		}
		p.Commands = append(p.Commands, rc)
	}
	return p, nil
}

// resolve produces the command pair for one spec.
func (b *Builder) resolve(s *job.Spec) (*ResolvedCommand, error) {
	profile, err := b.store.ResolveCluster(s.Cluster)
	if err != nil {
		return nil, err
	}
	if profile.RemoteDir == "" {
		return nil, errors.Newf(errors.ErrCodeConfigParse,
			"cluster %q has no remote_dir configured", s.Cluster)
	}

	target, tmpl, err := ResolveTarget(profile, s.Target)
	if err != nil {
		return nil, err
	}

	var partition string
	if NeedsPartition(tmpl) {
		partition = SelectPartition(profile, s.Cluster, s.Cores, s.MemoryGB)
	}

	formatted, err := Format(tmpl, &Substitutions{
		Partition: partition,
		Cores:     s.Cores,
		MemoryGB:  s.MemoryGB,
		Filename:  filepath.Base(s.File),
		Directory: profile.RemoteDir,
	})
	if err != nil {
		return nil, err
	}

	rc := &ResolvedCommand{
		File:      s.File,
		Cluster:   s.Cluster,
		Target:    target,
		Partition: partition,
		Sync:      BuildSyncCommand(s, profile),
		Submit:    BuildSubmitCommand(s, profile, formatted),
	}
	slog.Debug("resolved job",
		"file", s.File,
		"cluster", s.Cluster,
		"target", target,
		"partition", partition)
	return rc, nil
}

// BuildSyncCommand returns the file-transfer command staging the job's local
// file into the cluster's remote directory.
func BuildSyncCommand(s *job.Spec, profile *config.ClusterProfile) string {
	return fmt.Sprintf("rsync -az %s %s:%s/", s.File, s.Cluster, profile.RemoteDir)
}

// BuildSubmitCommand wraps the formatted target template in a remote
// invocation that first changes into the profile's remote directory.
func BuildSubmitCommand(s *job.Spec, profile *config.ClusterProfile, formatted string) string {
	return fmt.Sprintf("ssh %s 'cd %s && %s'", s.Cluster, profile.RemoteDir, formatted)
}
