// Package plan turns job specs into fully resolved command pairs.
//
// For each job the builder resolves the cluster profile's target template,
// selects a partition (via a per-cluster strategy table), substitutes the
// fixed placeholder set into the template, and emits a sync command plus a
// submit command as plain strings. Planning is pure: it never contacts a
// cluster, and preview output is byte-identical to what execution runs.
//
// Placeholders recognized in target templates:
//
//	{partition}  selected partition name
//	{cores}      task count, integer
//	{memory}     memory in MB, round(memory_gb * 1000)
//	{filename}   job file name, relative to the remote directory
//	{directory}  the profile's remote directory
//
// Any other placeholder is a fatal template error.
package plan
