package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLegacyEntryEnvVar(t *testing.T) {
	e := LegacyEntry{Section: "platform", Option: "url"}
	if got := e.EnvVar(); got != "FLYTE_PLATFORM_URL" {
		t.Fatalf("unexpected env var name: %s", got)
	}
}

func TestLegacyEntryReadFromEnv(t *testing.T) {
	e := LegacyEntry{Section: "madeup", Option: "endpoint"}

	t.Run("unset resolves to absent", func(t *testing.T) {
		v, err := e.ReadFromEnv(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != nil {
			t.Fatalf("expected absent value, got %v", v)
		}
	})

	t.Run("set returns raw string", func(t *testing.T) {
		t.Setenv("FLYTE_MADEUP_ENDPOINT", "dns:///example.com")
		v, err := e.ReadFromEnv(nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != "dns:///example.com" {
			t.Fatalf("unexpected value: %v", v)
		}
	})

	t.Run("transform applies", func(t *testing.T) {
		t.Setenv("FLYTE_MADEUP_ENDPOINT", "off")
		v, err := e.ReadFromEnv(BoolTransformer)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != false {
			t.Fatalf("expected false, got %v", v)
		}
	})
}

func TestBoolTransformer(t *testing.T) {
	falsy := []string{"false", "0", "off", "no", "FALSE", "Off", "No", ""}
	for _, raw := range falsy {
		v, err := BoolTransformer(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if v != false {
			t.Fatalf("expected false for %q, got %v", raw, v)
		}
	}

	truthy := []string{"true", "1", "on", "yes", "anything-else"}
	for _, raw := range truthy {
		v, err := BoolTransformer(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if v != true {
			t.Fatalf("expected true for %q, got %v", raw, v)
		}
	}

	t.Run("non-strings pass through", func(t *testing.T) {
		v, err := BoolTransformer(true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v != true {
			t.Fatalf("expected pass-through, got %v", v)
		}
	})
}

func TestNewConfigEntryAdoptsBoolTransform(t *testing.T) {
	entry := NewConfigEntry(LegacyEntry{Section: "sdk", Option: "verbose", Type: TypeBool}, nil, nil)
	if entry.Transform == nil {
		t.Fatalf("expected bool entry to adopt a transform")
	}

	stringEntry := NewConfigEntry(LegacyEntry{Section: "sdk", Option: "name"}, nil, nil)
	if stringEntry.Transform != nil {
		t.Fatalf("expected string entry to keep nil transform")
	}
}

func TestConfigEntryReadPrecedence(t *testing.T) {
	path := writeTempConfig(t, "flytekit.config", "[platform]\nurl = from-file\n")
	cfg, err := NewConfigFile(path)
	if err != nil {
		t.Fatalf("NewConfigFile returned error: %v", err)
	}

	entry := NewConfigEntry(LegacyEntry{Section: "platform", Option: "url"}, nil, nil)

	t.Run("env wins over file", func(t *testing.T) {
		t.Setenv("FLYTE_PLATFORM_URL", "from-env")
		v, err := entry.Read(cfg)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != "from-env" {
			t.Fatalf("expected env value, got %v", v)
		}
	})

	t.Run("env wins with no file", func(t *testing.T) {
		t.Setenv("FLYTE_PLATFORM_URL", "from-env")
		v, err := entry.Read(nil)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != "from-env" {
			t.Fatalf("expected env value, got %v", v)
		}
	})

	t.Run("file provides fallback", func(t *testing.T) {
		v, err := entry.Read(cfg)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != "from-file" {
			t.Fatalf("expected file value, got %v", v)
		}
	})

	t.Run("no sources resolve to absent", func(t *testing.T) {
		v, err := entry.Read(nil)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != nil {
			t.Fatalf("expected absent value, got %v", v)
		}
	})
}

func TestConfigEntryReadYAMLFallback(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "admin:\n  endpoint: dns:///flyte.example.com\n")
	cfg, err := NewConfigFile(path)
	if err != nil {
		t.Fatalf("NewConfigFile returned error: %v", err)
	}

	t.Run("resolves through yaml descriptor", func(t *testing.T) {
		entry := NewConfigEntry(
			LegacyEntry{Section: "platform", Option: "url"},
			&YamlEntry{Switch: "admin.endpoint"},
			nil,
		)
		v, err := entry.Read(cfg)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != "dns:///flyte.example.com" {
			t.Fatalf("unexpected value: %v", v)
		}
	})

	t.Run("entry without yaml descriptor cannot resolve", func(t *testing.T) {
		entry := NewConfigEntry(LegacyEntry{Section: "platform", Option: "url"}, nil, nil)
		v, err := entry.Read(cfg)
		if err != nil {
			t.Fatalf("Read returned error: %v", err)
		}
		if v != nil {
			t.Fatalf("expected absent value, got %v", v)
		}
	})
}

func TestLegacyEntryReadFromFileSwallowsLookupMiss(t *testing.T) {
	path := writeTempConfig(t, "flytekit.config", "[platform]\nurl = something\n")
	cfg, err := NewConfigFile(path)
	if err != nil {
		t.Fatalf("NewConfigFile returned error: %v", err)
	}

	e := LegacyEntry{Section: "missing", Option: "option"}
	v, err := e.ReadFromFile(cfg, nil)
	if err != nil {
		t.Fatalf("expected lookup miss to be swallowed, got %v", err)
	}
	if v != nil {
		t.Fatalf("expected absent value, got %v", v)
	}
}

func TestLegacyEntryReadFromFilePropagatesCoercionFailure(t *testing.T) {
	path := writeTempConfig(t, "flytekit.config", "[platform]\nport = not-a-number\n")
	cfg, err := NewConfigFile(path)
	if err != nil {
		t.Fatalf("NewConfigFile returned error: %v", err)
	}

	e := LegacyEntry{Section: "platform", Option: "port", Type: TypeInt}
	if _, err := e.ReadFromFile(cfg, nil); err == nil {
		t.Fatalf("expected coercion failure to propagate")
	}
}

func TestYamlEntryReadFromFileSwallowsAllErrors(t *testing.T) {
	path := writeTempConfig(t, "flytekit.config", "[platform]\nurl = something\n")
	cfg, err := NewConfigFile(path)
	if err != nil {
		t.Fatalf("NewConfigFile returned error: %v", err)
	}

	// A yaml descriptor against a legacy-backed file is an unsupported pairing
	// inside Get, but ReadFromFile absorbs even that into an absent value.
	e := YamlEntry{Switch: "admin.endpoint"}
	v, err := e.ReadFromFile(cfg, nil)
	if err != nil {
		t.Fatalf("expected error to be swallowed, got %v", err)
	}
	if v != nil {
		t.Fatalf("expected absent value, got %v", v)
	}
}
