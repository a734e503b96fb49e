/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package sweep expands filename templates into concrete filenames.
//
// A sweep template is a filename containing the {} marker, expanded against a
// list of literal values into one filename per value. A filename without the
// marker is returned as-is.
package sweep

import "strings"

// Marker is the placeholder replaced by each sweep value.
const Marker = "{}"

// HasMarker reports whether template contains the sweep placeholder.
func HasMarker(template string) bool {
	return strings.Contains(template, Marker)
}

// Expand returns the filenames produced by substituting each value into the
// template, in input order, without deduplication. Values are raw tokens and
// are never coerced; "4" stays "4".
//
// When the template contains no marker it is returned as the only element and
// the values are ignored. Callers relying on sweep expansion must check
// HasMarker themselves; this silent pass-through is part of the compatibility
// contract.
func Expand(template string, values []string) []string {
	if !HasMarker(template) {
		return []string{template}
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ReplaceAll(template, Marker, v))
	}
	return out
}
