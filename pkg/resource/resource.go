/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package resource broadcasts per-file resource value lists.
//
// Cores and memory are resolved independently by the same rule: an absent
// list falls back to the configured default, a single value is replicated
// across every file, and a full-length list is used as given. Any other
// length is fatal.
package resource

import (
	"github.com/hpckit/qsend/pkg/errors"
)

// Broadcast resolves a resource value list against count files.
//
//   - nil values: count copies of def
//   - one value: count copies of that value
//   - count values: returned unchanged
//
// Any other length returns a RESOURCE_COUNT_MISMATCH error. An empty non-nil
// list is treated as a mismatch, not as absent.
func Broadcast[T int | float64](values []T, count int, def T) ([]T, error) {
	if values == nil {
		out := make([]T, count)
		for i := range out {
			out[i] = def
		}
		return out, nil
	}

	switch len(values) {
	case 1:
		out := make([]T, count)
		for i := range out {
			out[i] = values[0]
		}
		return out, nil
	case count:
		return values, nil
	default:
		return nil, errors.NewWithContext(errors.ErrCodeResourceCountMismatch,
			"number of cores/memory values must match number of files or be a single value",
			map[string]any{"values": len(values), "files": count})
	}
}
