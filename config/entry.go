package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// envVarPrefix is prepended to every per-entry environment variable name.
const envVarPrefix = "FLYTE"

// ValueType directs how a raw legacy config value is extracted into a typed
// Go value. The set is closed: each variant has exactly one extraction rule
// in ConfigFile.
type ValueType int

const (
	// TypeString returns the raw value unchanged.
	TypeString ValueType = iota
	// TypeBool parses the document's native boolean syntax.
	TypeBool
	// TypeInt parses an integer literal.
	TypeInt
	// TypeList splits the raw value on "," into an ordered string slice.
	TypeList
)

// TransformFunc maps a resolved raw value to its final typed form. Raw
// environment values are always strings; file-read values may already be
// typed, so transforms accept any and are expected to pass through values
// they do not handle.
type TransformFunc func(v any) (any, error)

// BoolTransformer coerces string values to booleans: "false", "0", "off",
// and "no" (any case) yield false, any other non-empty string yields true,
// and the empty string yields false. Non-string values pass through
// unchanged.
func BoolTransformer(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	if s == "" {
		return false, nil
	}
	switch strings.ToLower(s) {
	case "false", "0", "off", "no":
		return false, nil
	}
	return true, nil
}

// Entry is the closed set of descriptor variants ConfigFile.Get accepts:
// LegacyEntry for INI documents and YamlEntry for YAML documents.
type Entry interface {
	isEntry()
}

// LegacyEntry describes where a setting lives in the legacy INI format: a
// section, an option within it, and the expected value type. Immutable after
// construction.
type LegacyEntry struct {
	Section string
	Option  string
	Type    ValueType
}

func (LegacyEntry) isEntry() {}

// EnvVar returns the environment variable consulted for this entry,
// FLYTE_{SECTION}_{OPTION} upper-cased.
func (e LegacyEntry) EnvVar() string {
	return fmt.Sprintf("%s_%s_%s", envVarPrefix, strings.ToUpper(e.Section), strings.ToUpper(e.Option))
}

// ReadFromEnv reads the entry from its environment variable, applying
// transform when provided. An unset variable resolves to (nil, nil).
func (e LegacyEntry) ReadFromEnv(transform TransformFunc) (any, error) {
	v, ok := os.LookupEnv(e.EnvVar())
	if !ok {
		return nil, nil
	}
	if transform != nil {
		return transform(v)
	}
	return v, nil
}

// ReadFromFile reads the entry from a loaded config file, applying transform
// when provided. Lookup misses (absent section or option) resolve to
// (nil, nil) so resolution can fall through; value-coercion failures (a bad
// bool or int literal) propagate. This deliberately swallows a narrower
// error set than YamlEntry.ReadFromFile.
func (e LegacyEntry) ReadFromFile(cfg *ConfigFile, transform TransformFunc) (any, error) {
	if cfg == nil {
		return nil, nil
	}
	v, err := cfg.Get(e)
	if err != nil {
		if errors.Is(err, ErrEntryNotFound) {
			return nil, nil
		}
		return nil, err
	}
	if transform != nil {
		return transform(v)
	}
	return v, nil
}

// YamlEntry describes where a setting lives in a YAML document: a
// dot-delimited path (the "switch", named after the external CLI flag it
// mirrors) and the expected value type. Immutable after construction.
type YamlEntry struct {
	Switch string
	Type   ValueType
}

func (YamlEntry) isEntry() {}

// ReadFromFile reads the entry from a loaded YAML config file, applying
// transform when provided. Every failure resolves to (nil, nil): path-walk
// errors are heterogeneous (missing key, non-mapping intermediate node,
// no YAML document loaded at all), so unlike LegacyEntry.ReadFromFile this
// is a catch-all. Failures are logged by the lookup itself.
func (e YamlEntry) ReadFromFile(cfg *ConfigFile, transform TransformFunc) (any, error) {
	if cfg == nil {
		return nil, nil
	}
	v, err := cfg.Get(e)
	if err != nil {
		return nil, nil
	}
	if transform != nil {
		if tv, terr := transform(v); terr == nil {
			return tv, nil
		}
		return nil, nil
	}
	return v, nil
}

// ConfigEntry is the top-level holder for one setting, composing its legacy
// descriptor with an optional YAML descriptor and an optional transform.
type ConfigEntry struct {
	Legacy    LegacyEntry
	YAMLEntry *YamlEntry
	Transform TransformFunc
}

// NewConfigEntry builds a ConfigEntry. When no transform is given and the
// legacy descriptor is boolean-typed, the entry adopts BoolTransformer so
// environment strings coerce consistently with file reads.
func NewConfigEntry(legacy LegacyEntry, yamlEntry *YamlEntry, transform TransformFunc) ConfigEntry {
	if transform == nil && legacy.Type == TypeBool {
		transform = BoolTransformer
	}
	return ConfigEntry{Legacy: legacy, YAMLEntry: yamlEntry, Transform: transform}
}

// Read resolves the entry against the sources in precedence order: the
// environment variable first, then the supplied config file via whichever
// document format it holds. A nil cfg limits resolution to the environment.
// An entry without a YAML descriptor cannot resolve against a YAML-backed
// file and falls through to absent.
func (c ConfigEntry) Read(cfg *ConfigFile) (any, error) {
	v, err := c.Legacy.ReadFromEnv(c.Transform)
	if err != nil || v != nil {
		return v, err
	}
	if cfg != nil && cfg.HasLegacyDocument() {
		return c.Legacy.ReadFromFile(cfg, c.Transform)
	}
	if cfg != nil && cfg.HasYAMLDocument() && c.YAMLEntry != nil {
		return c.YAMLEntry.ReadFromFile(cfg, c.Transform)
	}
	return nil, nil
}
