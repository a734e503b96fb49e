/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package wizard interactively builds a starter configuration file.
package wizard

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/errors"
)

// Wizard prompts for the handful of settings most users override and writes
// them as a config file. Everything it does not ask about falls back to the
// built-in defaults at load time.
type Wizard struct {
	in          io.Reader
	out         io.Writer
	interactive func() bool
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithStreams replaces stdin/stdout, primarily for tests.
func WithStreams(in io.Reader, out io.Writer) Option {
	return func(w *Wizard) {
		w.in = in
		w.out = out
	}
}

// WithInteractiveCheck replaces the terminal detection, primarily for tests.
func WithInteractiveCheck(fn func() bool) Option {
	return func(w *Wizard) { w.interactive = fn }
}

// New creates a Wizard reading from stdin and writing to stdout.
func New(opts ...Option) *Wizard {
	w := &Wizard{
		in:  os.Stdin,
		out: os.Stdout,
		interactive: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run prompts for settings and writes them to path. It refuses to run
// without a terminal and refuses to overwrite an existing file unless the
// user confirms.
func (w *Wizard) Run(path string) error {
	if !w.interactive() {
		return errors.New(errors.ErrCodeInvalidRequest,
			"config init requires an interactive terminal")
	}

	reader := bufio.NewReader(w.in)

	if _, err := os.Stat(path); err == nil {
		ok, err := w.confirm(reader, fmt.Sprintf("%s already exists, overwrite?", path))
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(w.out, "aborted, existing config left untouched")
			return nil
		}
	}

	builtin := config.Builtin()

	cluster, err := w.prompt(reader, "default cluster", builtin.DefaultCluster)
	if err != nil {
		return err
	}
	cores, err := w.promptInt(reader, "default cores", builtin.DefaultCores)
	if err != nil {
		return err
	}
	memory, err := w.promptFloat(reader, "default memory (GB)", builtin.DefaultMemory)
	if err != nil {
		return err
	}
	remoteDir, err := w.prompt(reader, "remote submit directory",
		builtin.DefaultClusterConfig.RemoteDir)
	if err != nil {
		return err
	}
	partition, err := w.prompt(reader, "default partition",
		builtin.DefaultClusterConfig.Partition)
	if err != nil {
		return err
	}

	out := map[string]any{
		"default_cluster": cluster,
		"default_cores":   cores,
		"default_memory":  memory,
		"default_cluster_config": map[string]any{
			"partition":  partition,
			"remote_dir": remoteDir,
			"targets":    builtin.DefaultClusterConfig.Targets,
		},
	}

	data, err := yaml.Marshal(out)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, "failed to encode config", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeExecutionFailure, "failed to write config file", err)
	}

	slog.Debug("config written", "path", path)
	fmt.Fprintf(w.out, "wrote %s\n", path)
	return nil
}

func (w *Wizard) prompt(r *bufio.Reader, label, def string) (string, error) {
	fmt.Fprintf(w.out, "%s [%s]: ", label, def)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrap(errors.ErrCodeInvalidRequest, "failed to read input", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	return line, nil
}

func (w *Wizard) promptInt(r *bufio.Reader, label string, def int) (int, error) {
	s, err := w.prompt(r, label, strconv.Itoa(def))
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Newf(errors.ErrCodeInvalidRequest, "%s must be an integer, got %q", label, s)
	}
	return v, nil
}

func (w *Wizard) promptFloat(r *bufio.Reader, label string, def float64) (float64, error) {
	s, err := w.prompt(r, label, strconv.FormatFloat(def, 'f', -1, 64))
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Newf(errors.ErrCodeInvalidRequest, "%s must be a number, got %q", label, s)
	}
	return v, nil
}

func (w *Wizard) confirm(r *bufio.Reader, question string) (bool, error) {
	answer, err := w.prompt(r, question+" (y/N)", "n")
	if err != nil {
		return false, err
	}
	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
