// Package suricata exposes the Suricata analyzer as configuration objects
// and command-line targets: the rule-set collection toggled through the
// analyzers interface and the configuration manager reached through a
// multiple-responsibility interface.
package suricata
