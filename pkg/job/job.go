/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package job assembles submission requests into per-file job specs.
//
// A request carries the raw file or template list plus optional per-file
// resource lists and sweep values. Assembly expands the sweep template,
// broadcasts cores and memory across the resulting files, and applies the
// uniform cluster override. The resulting specs are immutable inputs to
// command planning.
package job

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/errors"
	"github.com/hpckit/qsend/pkg/resource"
	"github.com/hpckit/qsend/pkg/sweep"
)

// DefaultTarget is the target used when a request names none.
const DefaultTarget = "default"

// Spec is one fully resolved job: a local file plus its resources, cluster,
// and target. Values are fixed once assembly completes.
type Spec struct {
	File     string  `json:"file" yaml:"file"`
	Cores    int     `json:"cores" yaml:"cores"`
	MemoryGB float64 `json:"memory_gb" yaml:"memory_gb"`
	Cluster  string  `json:"cluster" yaml:"cluster"`
	Target   string  `json:"target" yaml:"target"`
}

// Request is the structured submission request as parsed by the CLI layer.
// Nil resource slices mean "use the configured default".
type Request struct {
	Files       []string
	Cores       []int
	MemoryGB    []float64
	SweepValues []string
	Cluster     string
	Target      string
}

// BuildSpecs expands, broadcasts, and resolves a request into one Spec per
// file using cfg for defaults.
//
// Sweep values require exactly one filename template; supplying several files
// alongside sweep values is an INVALID_REQUEST error. The cluster override
// from the request is applied uniformly after the spec list is created, so a
// request-level cluster wins over the configured default for every file.
func BuildSpecs(cfg *config.GlobalConfig, req *Request) ([]*Spec, error) {
	files := req.Files
	if len(req.SweepValues) > 0 {
		if len(req.Files) != 1 {
			return nil, errors.Newf(errors.ErrCodeInvalidRequest,
				"sweep values require exactly one filename template, got %d files", len(req.Files))
		}
		files = sweep.Expand(req.Files[0], req.SweepValues)
	}
	if len(files) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidRequest, "no files to submit")
	}

	cores, err := resource.Broadcast(req.Cores, len(files), cfg.DefaultCores)
	if err != nil {
		return nil, err
	}
	memory, err := resource.Broadcast(req.MemoryGB, len(files), cfg.DefaultMemory)
	if err != nil {
		return nil, err
	}

	target := req.Target
	if target == "" {
		target = DefaultTarget
	}

	specs := make([]*Spec, len(files))
	for i, f := range files {
		if cores[i] <= 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidRequest, "cores must be positive, got %d for %s", cores[i], f)
		}
		if memory[i] <= 0 {
			return nil, errors.Newf(errors.ErrCodeInvalidRequest, "memory must be positive, got %v for %s", memory[i], f)
		}
		specs[i] = &Spec{
			File:     f,
			Cores:    cores[i],
			MemoryGB: memory[i],
			Cluster:  cfg.DefaultCluster,
			Target:   target,
		}
	}

	// The cluster flag overrides uniformly after the list exists.
	if req.Cluster != "" {
		for _, s := range specs {
			s.Cluster = req.Cluster
		}
	}

	return specs, nil
}

// CheckLocalFiles verifies that every spec's file exists locally. All files
// are checked before reporting, and a failure lists every missing file in
// input order. Stats run concurrently since home directories on shared
// filesystems can be slow.
func CheckLocalFiles(ctx context.Context, specs []*Spec) error {
	var mu sync.Mutex
	missing := make(map[string]int)

	g, _ := errgroup.WithContext(ctx)
	for i, s := range specs {
		g.Go(func() error {
			if _, err := os.Stat(s.File); err != nil {
				mu.Lock()
				if _, seen := missing[s.File]; !seen {
					missing[s.File] = i
				}
				mu.Unlock()
			}
			return nil
		})
	}
	// Goroutines only record misses, they never fail.
	_ = g.Wait()

	if len(missing) == 0 {
		return nil
	}

	names := make([]string, 0, len(missing))
	for f := range missing {
		names = append(names, f)
	}
	sort.Slice(names, func(a, b int) bool { return missing[names[a]] < missing[names[b]] })

	return errors.New(errors.ErrCodeMissingLocalFile,
		fmt.Sprintf("missing local files: %s", strings.Join(names, ", ")))
}
