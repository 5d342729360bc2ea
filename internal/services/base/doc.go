// Package base holds the behavior shared by the per-service configuration
// managers: the manager core every service embeds and the operation
// manifest (show, validate, reset, backup) every service inherits.
// Services merge their own manifests in front of the shared one, so a
// service-specific redefinition of an operation shadows the base
// definition.
package base
