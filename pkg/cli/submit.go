/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/executor"
	"github.com/hpckit/qsend/pkg/job"
	"github.com/hpckit/qsend/pkg/plan"
)

func submitCmd() *cli.Command {
	return &cli.Command{
		Name:                  "submit",
		EnableShellCompletion: true,
		Usage:                 "Sync job scripts to a cluster and submit them",
		ArgsUsage:             "FILE [FILE...]",
		Description: `Build and run the sync and submission commands for one or more job scripts.

For each script, qsend produces two commands:
  1. an rsync command that stages the script in the cluster's remote directory
  2. an ssh command that submits it from that directory

Resources accept either a single value (applied to every file) or one
value per file:

  qsend submit a.py b.py --cores 4
  qsend submit a.py b.py --cores 4,8 --memory 8,16

A filename containing the {} marker together with --values expands one
template into a job per value:

  qsend submit 'sim_D{}.py' --values 4,5,6

Use --preview to print the commands without running them. The printed
commands are byte-identical to the ones a run would execute.`,
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "cores",
				Usage: "Cores per job (single value or one per file)",
			},
			&cli.StringSliceFlag{
				Name:  "memory",
				Usage: "Memory in GB per job (single value or one per file)",
			},
			&cli.StringSliceFlag{
				Name:  "values",
				Usage: "Sweep values substituted for the {} marker in the filename",
			},
			&cli.StringFlag{
				Name:  "cluster",
				Usage: "Cluster to submit to (default: the configured default cluster)",
			},
			&cli.StringFlag{
				Name:  "target",
				Value: job.DefaultTarget,
				Usage: "Named submission template within the cluster",
			},
			&cli.BoolFlag{
				Name:    "preview",
				Aliases: []string{"p"},
				Usage:   "Print the resolved commands without executing them",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("at least one job script is required")
			}

			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			cores, err := parseIntList(cmd.StringSlice("cores"))
			if err != nil {
				return fmt.Errorf("cores: %w", err)
			}
			memory, err := parseFloatList(cmd.StringSlice("memory"))
			if err != nil {
				return fmt.Errorf("memory: %w", err)
			}

			req := &job.Request{
				Files:       cmd.Args().Slice(),
				Cores:       cores,
				MemoryGB:    memory,
				SweepValues: cmd.StringSlice("values"),
				Cluster:     cmd.String("cluster"),
				Target:      cmd.String("target"),
			}

			specs, err := job.BuildSpecs(cfg, req)
			if err != nil {
				return fmt.Errorf("invalid submission request: %w", err)
			}

			if err := job.CheckLocalFiles(ctx, specs); err != nil {
				return err
			}

			p, err := plan.NewBuilder(config.NewStore(cfg)).Build(specs)
			if err != nil {
				return fmt.Errorf("failed to build submission commands: %w", err)
			}

			if cmd.Bool("preview") {
				return renderPreview(cmd.Root().Writer, p)
			}

			return executor.NewRunner().Run(ctx, p)
		},
	}
}

func parseIntList(values []string) ([]int, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", v)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseFloatList(values []string) ([]float64, error) {
	if len(values) == 0 {
		return nil, nil
	}
	out := make([]float64, 0, len(values))
	for _, v := range values {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", v)
		}
		out = append(out, f)
	}
	return out, nil
}
