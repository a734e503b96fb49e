/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package plan

// ResolvedCommand is one job's executable command pair plus the resolution
// context it was produced from. Sync must complete before Submit runs.
type ResolvedCommand struct {
	File      string
	Cluster   string
	Target    string
	Partition string
	Sync      string
	Submit    string
}

// Plan is the ordered command sequence for one submission request.
type Plan struct {
	Commands []*ResolvedCommand
}
