/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package executor runs resolved command plans against the local shell.
//
// Execution is strictly sequential and fail-fast: for each job the sync
// command must complete before the submit command starts, submits run in
// input order, and the first non-zero exit status aborts everything that
// remains. Already-run commands are not rolled back.
package executor

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/hpckit/qsend/pkg/defaults"
	"github.com/hpckit/qsend/pkg/errors"
	"github.com/hpckit/qsend/pkg/plan"
)

// ExecFunc runs one shell command string to completion.
type ExecFunc func(ctx context.Context, command string) error

// Runner executes command plans.
type Runner struct {
	exec    ExecFunc
	limiter *rate.Limiter
}

// Option configures a Runner.
type Option func(*Runner)

// WithExecFunc replaces the shell invocation, primarily for tests.
func WithExecFunc(fn ExecFunc) Option {
	return func(r *Runner) { r.exec = fn }
}

// WithLimiter replaces the submit throttle.
func WithLimiter(l *rate.Limiter) Option {
	return func(r *Runner) { r.limiter = l }
}

// NewRunner creates a Runner with the default shell executor and submit
// throttle.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{
		exec:    shellExec,
		limiter: rate.NewLimiter(rate.Limit(defaults.SubmitsPerSecond), defaults.SubmitBurst),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every command pair in p in order. The first failure aborts
// the remaining sequence and is returned as an EXECUTION_FAILURE naming the
// command that failed.
func (r *Runner) Run(ctx context.Context, p *plan.Plan) error {
	runID := uuid.NewString()

	for i, rc := range p.Commands {
		slog.Info("syncing",
			"run", runID,
			"job", i+1,
			"of", len(p.Commands),
			"file", rc.File,
			"cluster", rc.Cluster)
		if err := r.runOne(ctx, rc.Sync, defaults.SyncTimeout); err != nil {
			return errors.WrapWithContext(errors.ErrCodeExecutionFailure,
				"sync failed, aborting remaining jobs", err,
				map[string]any{"command": rc.Sync, "run": runID})
		}

		if err := r.limiter.Wait(ctx); err != nil {
			return errors.Wrap(errors.ErrCodeExecutionFailure, "submission interrupted", err)
		}

		slog.Info("submitting",
			"run", runID,
			"job", i+1,
			"of", len(p.Commands),
			"file", rc.File,
			"target", rc.Target)
		if err := r.runOne(ctx, rc.Submit, defaults.SubmitTimeout); err != nil {
			return errors.WrapWithContext(errors.ErrCodeExecutionFailure,
				"submission failed, aborting remaining jobs", err,
				map[string]any{"command": rc.Submit, "run": runID})
		}
	}

	return nil
}

func (r *Runner) runOne(ctx context.Context, command string, timeout time.Duration) error {
	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.exec(cctx, command)
}

// shellExec runs command via the shell with stdout/stderr passed through.
func shellExec(ctx context.Context, command string) error {
	cmd := exec.CommandContext(ctx, "sh", "-c", command)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
