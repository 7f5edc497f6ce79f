package settings

import (
	"fmt"
	"strconv"

	"github.com/eugenenazirov/flyteconfig/config"
)

// intTransformer coerces raw environment strings to integers so int-typed
// entries resolve to the same Go type from every source. File-sourced values
// arrive already typed and pass through unchanged.
func intTransformer(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return v, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("parse int value %q: %w", s, err)
	}
	return n, nil
}

// Well-known entries. Legacy section/option names follow the historical INI
// layout; the YAML switches mirror the companion CLI's flag names, which is
// why platform settings live under "admin" on the YAML side.
var (
	PlatformURL = config.NewConfigEntry(
		config.LegacyEntry{Section: "platform", Option: "url"},
		&config.YamlEntry{Switch: "admin.endpoint"},
		nil,
	)
	PlatformInsecure = config.NewConfigEntry(
		config.LegacyEntry{Section: "platform", Option: "insecure", Type: config.TypeBool},
		&config.YamlEntry{Switch: "admin.insecure", Type: config.TypeBool},
		nil,
	)
	StatsdHost = config.NewConfigEntry(
		config.LegacyEntry{Section: "statsd", Option: "host"},
		&config.YamlEntry{Switch: "statsd.host"},
		nil,
	)
	StatsdPort = config.NewConfigEntry(
		config.LegacyEntry{Section: "statsd", Option: "port", Type: config.TypeInt},
		&config.YamlEntry{Switch: "statsd.port", Type: config.TypeInt},
		intTransformer,
	)
	StatsdDisabled = config.NewConfigEntry(
		config.LegacyEntry{Section: "statsd", Option: "disabled", Type: config.TypeBool},
		&config.YamlEntry{Switch: "statsd.disabled", Type: config.TypeBool},
		nil,
	)
	LoggingLevel = config.NewConfigEntry(
		config.LegacyEntry{Section: "logging", Option: "level", Type: config.TypeInt},
		&config.YamlEntry{Switch: "logger.level", Type: config.TypeInt},
		intTransformer,
	)
)

// named lists every well-known entry under the key used in resolved maps.
var named = map[string]config.ConfigEntry{
	"platform.url":      PlatformURL,
	"platform.insecure": PlatformInsecure,
	"statsd.host":       StatsdHost,
	"statsd.port":       StatsdPort,
	"statsd.disabled":   StatsdDisabled,
	"logging.level":     LoggingLevel,
}

// Platform holds the resolved platform connection settings.
type Platform struct {
	URL      string
	Insecure bool
}

// Statsd holds the resolved statsd emission settings.
type Statsd struct {
	Host     string
	Port     int
	Disabled bool
}

// ResolvePlatform resolves the platform settings against cfg. Absent values
// leave the zero value in place.
func ResolvePlatform(cfg *config.ConfigFile) (Platform, error) {
	var p Platform

	v, err := PlatformURL.Read(cfg)
	if err != nil {
		return Platform{}, fmt.Errorf("resolve platform url: %w", err)
	}
	if s, ok := v.(string); ok {
		p.URL = s
	}

	v, err = PlatformInsecure.Read(cfg)
	if err != nil {
		return Platform{}, fmt.Errorf("resolve platform insecure: %w", err)
	}
	if b, ok := v.(bool); ok {
		p.Insecure = b
	}

	return p, nil
}

// ResolveStatsd resolves the statsd settings against cfg. Absent values
// leave the zero value in place.
func ResolveStatsd(cfg *config.ConfigFile) (Statsd, error) {
	var s Statsd

	v, err := StatsdHost.Read(cfg)
	if err != nil {
		return Statsd{}, fmt.Errorf("resolve statsd host: %w", err)
	}
	if host, ok := v.(string); ok {
		s.Host = host
	}

	v, err = StatsdPort.Read(cfg)
	if err != nil {
		return Statsd{}, fmt.Errorf("resolve statsd port: %w", err)
	}
	if port, ok := v.(int); ok {
		s.Port = port
	}

	v, err = StatsdDisabled.Read(cfg)
	if err != nil {
		return Statsd{}, fmt.Errorf("resolve statsd disabled: %w", err)
	}
	if disabled, ok := v.(bool); ok {
		s.Disabled = disabled
	}

	return s, nil
}

// Resolved reads every well-known entry against cfg and returns the values
// that resolved, keyed by "section.option". Absent entries are simply left
// out of the map.
func Resolved(cfg *config.ConfigFile) (map[string]any, error) {
	out := map[string]any{}
	for name, entry := range named {
		v, err := entry.Read(cfg)
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", name, err)
		}
		out = config.SetIfPresent(out, name, v)
	}
	return out, nil
}
