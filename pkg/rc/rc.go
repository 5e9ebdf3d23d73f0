// Package rc loads the configuration file of cowl.
//
// The configuration file is a YAML document like:
//
//	db: ~/.local/state/cowl/db
//	log: /tmp/cowl.log
//	prompt: "cowl> "
//	history: true
//
// All fields are optional.
package rc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultPrompt is the prompt used in interactive mode when the config does
// not set one.
const DefaultPrompt = "cowl> "

// Config keeps the content of the configuration file.
type Config struct {
	// Path of the database for saved lists and command history. Empty means
	// no persistence.
	DB string `yaml:"db"`
	// Path of the debug log file. Empty means no logging.
	Log string `yaml:"log"`
	// Prompt shown in interactive mode.
	Prompt string `yaml:"prompt"`
	// Whether to record commands run in interactive mode in the database.
	History bool `yaml:"history"`
}

// Default returns the configuration used when there is no configuration
// file.
func Default() *Config {
	return &Config{Prompt: DefaultPrompt, History: true}
}

// Path returns the default path of the configuration file,
// $XDG_CONFIG_HOME/cowl/rc.yaml or its equivalent on the current OS.
func Path() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cowl", "rc.yaml"), nil
}

// Load reads the configuration file at path. A missing file is not an error;
// the default configuration is returned instead. Fields missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, err
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document into cfg, rejecting unknown fields.
func Parse(data []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	cfg.DB = expandHome(cfg.DB)
	cfg.Log = expandHome(cfg.Log)
	return nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
