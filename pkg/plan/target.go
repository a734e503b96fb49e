/*
Copyright © 2025 HPCKit Authors
SPDX-License-Identifier: Apache-2.0
*/
package plan

import (
	"log/slog"

	"github.com/hpckit/qsend/pkg/config"
	"github.com/hpckit/qsend/pkg/errors"
	"github.com/hpckit/qsend/pkg/job"
)

// ResolveTarget returns the effective target name and its command template
// for the requested target on a profile.
//
// An unknown target is not fatal: it logs a warning and falls back to the
// "default" target. A profile without a "default" target is malformed and
// returns a TEMPLATE_FORMAT error.
func ResolveTarget(profile *config.ClusterProfile, requested string) (string, string, error) {
	if tmpl, ok := profile.Targets[requested]; ok {
		return requested, tmpl, nil
	}

	if requested != job.DefaultTarget {
		if tmpl, ok := profile.Targets[job.DefaultTarget]; ok {
			slog.Warn("unknown target, falling back to default", "target", requested)
			targetFallbacks.Inc()
			return job.DefaultTarget, tmpl, nil
		}
	}

	return "", "", errors.Newf(errors.ErrCodeTemplateFormat,
		"cluster profile has no %q target", job.DefaultTarget)
}
