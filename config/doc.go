// Package config resolves individual SDK settings from layered sources with
// fixed precedence: environment variables > legacy INI config file > YAML
// config file. Callers describe where a setting lives with a ConfigEntry and
// call Read against an optional loaded ConfigFile; missing values resolve to
// nil rather than errors, so absence is always a plain fall-through to the
// next source.
package config
