// Package zeek exposes the Zeek analyzer as configuration objects and
// command-line targets: the script and redef collections toggled through
// the analyzers interface and the configuration manager reached through a
// multiple-responsibility interface. Redef values are Zeek statements and
// carry the ';' statement terminator.
package zeek
