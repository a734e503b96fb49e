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

package defaults

import "time"

// Executor timeouts for external command execution.
const (
	// SyncTimeout is the maximum duration for a single file-transfer command.
	// Large inputs over slow links dominate this budget.
	SyncTimeout = 10 * time.Minute

	// SubmitTimeout is the maximum duration for a single remote submission
	// command. Submission only enqueues the job, so this stays short.
	SubmitTimeout = 60 * time.Second
)

// Submission throttling.
const (
	// SubmitsPerSecond caps the steady-state rate of remote submissions so a
	// large batch does not hammer the cluster login node.
	SubmitsPerSecond = 2

	// SubmitBurst is the number of submissions allowed to proceed immediately
	// before the rate limit applies.
	SubmitBurst = 4
)

// Configuration file discovery.
const (
	// ConfigFileName is the per-user configuration file looked up in the home
	// directory when no explicit --config path is given.
	ConfigFileName = ".qsend.yaml"
)
