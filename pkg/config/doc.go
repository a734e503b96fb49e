// Package config loads and resolves the qsend configuration document.
//
// The effective configuration is the built-in defaults with an optional
// per-user YAML file merged on top. The merge is shallow: each top-level key
// present in the file (default_cluster, default_cores, default_memory,
// clusters, default_cluster_config) fully replaces the built-in value for
// that key. Supplying a partial clusters map therefore discards all built-in
// cluster entries; this is a long-standing compatibility contract, not an
// accident.
//
// Cluster resolution goes through Store, which synthesizes profiles for
// unknown cluster names from default_cluster_config and caches them in memory
// for the duration of the run. The config file itself is only ever written by
// the interactive wizard.
package config
