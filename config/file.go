package config

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"
	"gopkg.in/yaml.v3"
)

// reservedSection names the INI section reserved for internal-only settings.
// A user-supplied config file must never contain it.
const reservedSection = "internal"

// ConfigFile is a config document loaded from disk. Exactly one of the two
// document fields is populated, chosen by the location's extension: paths
// ending in "yaml" parse as YAML, everything else as legacy INI. Instances
// are read-only after construction and safe for concurrent use.
type ConfigFile struct {
	location  string
	legacyDoc *ini.File
	yamlDoc   map[string]any
}

// NewConfigFile loads the config document at location. A malformed YAML body
// is logged as a warning and treated as an absent document rather than an
// error, so YAML-only entries degrade to absent. A legacy file containing
// the reserved internal section fails with ErrReservedSection.
func NewConfigFile(location string) (*ConfigFile, error) {
	f := &ConfigFile{location: location}
	if strings.HasSuffix(location, "yaml") {
		doc, err := readYAMLDocument(location)
		if err != nil {
			return nil, err
		}
		f.yamlDoc = doc
		return f, nil
	}
	doc, err := readLegacyDocument(location)
	if err != nil {
		return nil, err
	}
	f.legacyDoc = doc
	return f, nil
}

// Location returns the path the file was loaded from.
func (f *ConfigFile) Location() string {
	return f.location
}

// HasLegacyDocument reports whether a parsed INI document is loaded.
func (f *ConfigFile) HasLegacyDocument() bool {
	return f.legacyDoc != nil
}

// HasYAMLDocument reports whether a parsed YAML document is loaded.
func (f *ConfigFile) HasYAMLDocument() bool {
	return f.yamlDoc != nil
}

// Get extracts the value a descriptor points at from the loaded document.
// Lookup misses return an error wrapping ErrEntryNotFound. Each entry
// variant is only valid against a file backed by its own document format;
// any other pairing, or a future Entry variant, returns ErrUnsupportedEntry.
func (f *ConfigFile) Get(e Entry) (any, error) {
	switch e := e.(type) {
	case LegacyEntry:
		if f.legacyDoc != nil {
			return f.getFromLegacy(e)
		}
	case YamlEntry:
		if f.yamlDoc != nil {
			return f.getFromYAML(e)
		}
	}
	return nil, fmt.Errorf("%w: %T against %s", ErrUnsupportedEntry, e, f.location)
}

func readYAMLDocument(location string) (map[string]any, error) {
	data, err := os.ReadFile(location)
	if err != nil {
		return nil, fmt.Errorf("read yaml config %s: %w", location, err)
	}
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		logger.Warn("ignoring malformed yaml config file",
			zap.String("location", location),
			zap.Error(err),
		)
		return nil, nil
	}
	return doc, nil
}

func readLegacyDocument(location string) (*ini.File, error) {
	doc, err := ini.Load(location)
	if err != nil {
		return nil, fmt.Errorf("read legacy config %s: %w", location, err)
	}
	if _, err := doc.GetSection(reservedSection); err == nil {
		return nil, fmt.Errorf("config file %s cannot contain a section for internal only configurations: %w",
			location, ErrReservedSection)
	}
	return doc, nil
}

// getFromLegacy extracts a value with the rule its type variant dictates.
// Coercion failures (a bad bool or int literal) are real errors and
// propagate; only absence maps to ErrEntryNotFound.
func (f *ConfigFile) getFromLegacy(e LegacyEntry) (any, error) {
	section, err := f.legacyDoc.GetSection(e.Section)
	if err != nil {
		return nil, fmt.Errorf("section %q: %w", e.Section, ErrEntryNotFound)
	}
	if !section.HasKey(e.Option) {
		return nil, fmt.Errorf("option %q in section %q: %w", e.Option, e.Section, ErrEntryNotFound)
	}
	key := section.Key(e.Option)

	switch e.Type {
	case TypeBool:
		v, err := key.Bool()
		if err != nil {
			return nil, fmt.Errorf("option %q in section %q: %w", e.Option, e.Section, err)
		}
		return v, nil
	case TypeInt:
		v, err := key.Int()
		if err != nil {
			return nil, fmt.Errorf("option %q in section %q: %w", e.Option, e.Section, err)
		}
		return v, nil
	case TypeList:
		// Raw split: surrounding whitespace belongs to the items.
		return strings.Split(key.String(), ","), nil
	default:
		return key.String(), nil
	}
}

// getFromYAML walks the document mapping key by key along the dot-delimited
// switch. A missing key or a non-mapping intermediate node is logged and
// reported as ErrEntryNotFound.
func (f *ConfigFile) getFromYAML(e YamlEntry) (any, error) {
	var node any = f.yamlDoc
	for _, k := range strings.Split(e.Switch, ".") {
		mapping, ok := node.(map[string]any)
		if !ok {
			return nil, f.yamlSwitchMiss(e.Switch)
		}
		node, ok = mapping[k]
		if !ok {
			return nil, f.yamlSwitchMiss(e.Switch)
		}
	}
	return node, nil
}

func (f *ConfigFile) yamlSwitchMiss(switchPath string) error {
	logger.Error("switch could not be found in yaml config",
		zap.String("switch", switchPath),
		zap.String("location", f.location),
	)
	logger.Debug("yaml config contents", zap.Any("config", f.yamlDoc))
	return fmt.Errorf("switch %q: %w", switchPath, ErrEntryNotFound)
}
