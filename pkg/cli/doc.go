// Package cli implements the command-line interface for the qsend tool.
//
// # Overview
//
// The qsend CLI turns local job scripts into the rsync and ssh commands that
// stage them on an HPC cluster and submit them to the batch scheduler. It is
// designed for researchers submitting many similar jobs from a workstation.
//
// # Commands
//
// submit - Sync and submit job scripts:
//
//	qsend submit sim.py --cores 4 --memory 8
//	qsend submit 'sim_D{}.py' --values 4,5,6 --preview
//
// Builds a sync/submit command pair per job. Resources accept a single value
// broadcast to every file or one value per file. A {} marker in the filename
// expands into one job per --values entry. --preview prints the commands
// byte-identical to what a run would execute.
//
// config show - Print the resolved configuration:
//
//	qsend config show [--format yaml|json|table] [--output FILE]
//
// config init - Interactively create the config file:
//
//	qsend config init
//
// # Global Flags
//
//	--config, -c     Config file (default: $HOME/.qsend.yaml)
//	--log-level      Logging verbosity: debug, info, warn, error
//
// # Environment Variables
//
//	QSEND_CONFIG   Config file path, same as --config
//	LOG_LEVEL      Logging verbosity, same as --log-level
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized packages:
//   - pkg/config - Layered configuration
//   - pkg/job - Request expansion and validation
//   - pkg/plan - Command resolution
//   - pkg/executor - Sequential execution
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/hpckit/qsend/pkg/cli.version=1.0.0'"
package cli
