package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/flyteconfig/config"
	"github.com/eugenenazirov/flyteconfig/internal/logging"
	"github.com/eugenenazirov/flyteconfig/settings"
)

func main() {
	app := kingpin.New("flyteconfig", "Resolves SDK settings from environment variables and legacy or YAML config files")
	configPath := app.Flag("config", "Path to a config file; default locations are searched when omitted").String()
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()
	section := app.Flag("section", "Legacy config section of the entry to resolve").String()
	option := app.Flag("option", "Legacy config option of the entry to resolve").String()
	valueType := app.Flag("type", "Expected value type of the entry").Default("string").Enum("string", "bool", "int", "list")
	switchPath := app.Flag("switch", "Dot-delimited YAML path of the entry, if it has one").String()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.New(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()
	config.SetLogger(logger)

	cfg, err := config.GetConfigFile(*configPath)
	if err != nil {
		logger.Fatal("failed to load config file", zap.Error(err))
	}

	if *section == "" && *option == "" {
		dumpWellKnown(cfg, logger)
		return
	}
	if *section == "" || *option == "" {
		logger.Fatal("--section and --option must be given together")
	}

	entry, err := buildEntry(*section, *option, *valueType, *switchPath)
	if err != nil {
		logger.Fatal("invalid entry description", zap.Error(err))
	}

	v, err := entry.Read(cfg)
	if err != nil {
		logger.Fatal("failed to resolve entry", zap.Error(err))
	}
	if v == nil {
		logger.Warn("entry did not resolve against any source",
			zap.String("section", *section),
			zap.String("option", *option),
		)
		os.Exit(1)
	}
	printYAML(v, logger)
}

// buildEntry assembles a ConfigEntry from flag values. The switch is
// optional; without it the entry cannot resolve against YAML-backed files.
func buildEntry(section, option, valueType, switchPath string) (config.ConfigEntry, error) {
	vt, err := parseValueType(valueType)
	if err != nil {
		return config.ConfigEntry{}, err
	}
	var yamlEntry *config.YamlEntry
	if switchPath != "" {
		yamlEntry = &config.YamlEntry{Switch: switchPath, Type: vt}
	}
	legacy := config.LegacyEntry{Section: section, Option: option, Type: vt}
	return config.NewConfigEntry(legacy, yamlEntry, nil), nil
}

func parseValueType(s string) (config.ValueType, error) {
	switch s {
	case "string":
		return config.TypeString, nil
	case "bool":
		return config.TypeBool, nil
	case "int":
		return config.TypeInt, nil
	case "list":
		return config.TypeList, nil
	default:
		return config.TypeString, fmt.Errorf("unknown value type %q", s)
	}
}

func dumpWellKnown(cfg *config.ConfigFile, logger *zap.Logger) {
	resolved, err := settings.Resolved(cfg)
	if err != nil {
		logger.Fatal("failed to resolve well-known settings", zap.Error(err))
	}
	printYAML(resolved, logger)
}

func printYAML(v any, logger *zap.Logger) {
	out, err := yaml.Marshal(v)
	if err != nil {
		logger.Fatal("failed to encode output", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}
