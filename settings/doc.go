// Package settings defines the well-known config entries the SDK resolves
// and typed snapshots over them. Each entry pairs a legacy INI descriptor
// with the YAML switch the companion CLI uses for the same setting, so one
// definition serves both file formats.
package settings
