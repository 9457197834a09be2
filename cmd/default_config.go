package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Defaults represents the full defaults.yaml structure.
// All top-level keys must be listed to satisfy KnownFields(true) strict parsing.
type Defaults struct {
	Version   string `yaml:"version"`
	Engine    string `yaml:"engine"`
	Threads   int    `yaml:"threads"`
	Print     string `yaml:"print"`
	MaxMemory string `yaml:"max_memory"` // humanized, e.g. "4 GiB"
	Trace     string `yaml:"trace"`
	Log       string `yaml:"log"`
}

// loadDefaultsConfig parses a defaults file. Unknown keys are errors so that
// typos do not silently fall back to built-in values.
func loadDefaultsConfig(path string) (Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults{}, fmt.Errorf("reading defaults file %s: %w", path, err)
	}
	var cfg Defaults
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return Defaults{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}
	return cfg, nil
}

// applyDefaults loads the defaults file named by --defaults and copies its
// values into every flag the user did not set explicitly. A missing file is
// only an error when --defaults was given.
func applyDefaults(cmd *cobra.Command) error {
	d, err := loadDefaultsConfig(defaultsFilePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("defaults") {
			logrus.Debugf("no defaults file at %s, using built-in defaults", defaultsFilePath)
			return nil
		}
		return err
	}

	set := func(name, value string) error {
		if value == "" || cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
			return nil
		}
		return cmd.Flags().Set(name, value)
	}
	if err := set("engine", d.Engine); err != nil {
		return err
	}
	if d.Threads != 0 {
		if err := set("threads", fmt.Sprint(d.Threads)); err != nil {
			return err
		}
	}
	if err := set("print", d.Print); err != nil {
		return err
	}
	if err := set("max-memory", d.MaxMemory); err != nil {
		return err
	}
	if err := set("trace", d.Trace); err != nil {
		return err
	}
	if err := set("log", d.Log); err != nil {
		return err
	}
	logrus.Debugf("applied defaults from %s (version %s)", defaultsFilePath, d.Version)
	return nil
}
