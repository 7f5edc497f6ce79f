package config

import "errors"

var (
	// ErrEntryNotFound is returned when a descriptor's section, option, or
	// YAML path is absent from a loaded document. Resolution treats it as a
	// recoverable miss and falls through to the next source.
	ErrEntryNotFound = errors.New("config entry not found")
	// ErrReservedSection is returned when a legacy config file contains the
	// section reserved for internal-only settings. User-supplied files must
	// never carry it.
	ErrReservedSection = errors.New("config file contains reserved internal section")
	// ErrUnsupportedEntry is returned when ConfigFile.Get receives an entry
	// variant it cannot serve. It signals a programmer error, not a user
	// misconfiguration.
	ErrUnsupportedEntry = errors.New("unsupported config entry type")
)
