// Copyright (c) 2025, HPCKit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestConfigShowWithoutConfigFile covers the built-in-defaults path: with no
// config file in the home directory, config show must succeed on the
// built-in configuration instead of failing on the absent file.
func TestConfigShowWithoutConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	outPath := filepath.Join(t.TempDir(), "resolved.yaml")
	root := rootCmd()
	args := []string{"qsend", "config", "show", "--output", outPath}
	if err := root.Run(t.Context(), args); err != nil {
		t.Fatalf("config show failed without a config file: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "default_cluster: alpine") {
		t.Errorf("resolved config missing built-in default cluster:\n%s", data)
	}
}

// TestConfigShowExplicitMissingFile: a --config path that does not exist is
// an error, unlike the optional home-directory file.
func TestConfigShowExplicitMissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	missing := filepath.Join(t.TempDir(), "absent.yaml")
	root := rootCmd()
	args := []string{"qsend", "--config", missing, "config", "show"}
	if err := root.Run(t.Context(), args); err == nil {
		t.Fatal("expected error for an explicit missing config file")
	}
}

func TestConfigShowMergedFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgPath := filepath.Join(home, ".qsend.yaml")
	if err := os.WriteFile(cfgPath, []byte("default_cores: 16\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	outPath := filepath.Join(t.TempDir(), "resolved.yaml")
	root := rootCmd()
	args := []string{"qsend", "config", "show", "--output", outPath}
	if err := root.Run(t.Context(), args); err != nil {
		t.Fatalf("config show failed: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "default_cores: 16") {
		t.Errorf("resolved config missing file override:\n%s", out)
	}
	// untouched top-level keys keep their built-in values
	if !strings.Contains(out, "default_cluster: alpine") {
		t.Errorf("resolved config missing built-in default cluster:\n%s", out)
	}
}
