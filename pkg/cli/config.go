/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/defaults"
	"github.com/hpckit/qsend/pkg/serializer"
	"github.com/hpckit/qsend/pkg/wizard"
)

func configCmd() *cli.Command {
	return &cli.Command{
		Name:                  "config",
		EnableShellCompletion: true,
		Usage:                 "Inspect and initialize the qsend configuration",
		Commands: []*cli.Command{
			configShowCmd(),
			configInitCmd(),
		},
	}
}

func configShowCmd() *cli.Command {
	return &cli.Command{
		Name:  "show",
		Usage: "Print the fully resolved configuration",
		Description: `Print the configuration after layering the config file over the
built-in defaults, in JSON, YAML, or table format. Useful for checking
which cluster, partition, and template a submission would actually use.`,
		Flags: []cli.Flag{
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			cfg, err := config.Load(configPath(cmd))
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			ser := serializer.NewFileWriterOrStdout(outFormat, cmd.String("output"))
			defer func() {
				if err := ser.Close(); err != nil {
					slog.Warn("failed to close serializer", "error", err)
				}
			}()

			return ser.Serialize(ctx, cfg)
		},
	}
}

func configInitCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Interactively create a config file",
		Description: `Walk through the most common settings and write them to the config
file. Requires an interactive terminal. Settings not covered by the
prompts keep their built-in defaults.`,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := configPath(cmd)
			if path == "" {
				home, err := os.UserHomeDir()
				if err != nil {
					return fmt.Errorf("cannot determine config file location, pass --config: %w", err)
				}
				path = filepath.Join(home, defaults.ConfigFileName)
			}
			return wizard.New().Run(path)
		},
	}
}
