// Package config provides the YAML-backed store for per-service
// configuration files.
//
// Configuration is loaded from a single root directory, one file per
// service (suricata.yaml, zeek.yaml, filebeat.yaml). The default root is
// /etc/dynamite; the DYNAMITE_CONFIG_PATH environment variable overrides
// it, which is also how tests point the store at a temporary directory.
//
// The store itself is format-agnostic glue: the mutation engine returns
// mutated objects to its caller, and commands in cmd/ use LoadYAML and
// SaveYAML to round-trip them here.
package config
