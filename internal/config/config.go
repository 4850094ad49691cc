// Package config resolves which window manager client and picker the tool
// drives. Defaults target i3 with rofi; an optional YAML file and command
// line flags override them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects the window manager client, the picker and the mark prefix.
type Config struct {
	WM     WMConfig     `yaml:"wm"`
	Picker PickerConfig `yaml:"picker"`
	Prefix string       `yaml:"prefix"`
}

// WMConfig names the IPC client binary (i3-msg, swaymsg).
type WMConfig struct {
	Command string `yaml:"command"`
}

// PickerConfig describes a dmenu-compatible picker invocation:
// Command Args... PromptFlag <title>.
type PickerConfig struct {
	Command    string   `yaml:"command"`
	Args       []string `yaml:"args"`
	PromptFlag string   `yaml:"prompt_flag"`
}

// Default returns the i3-msg and rofi -dmenu configuration.
func Default() Config {
	return Config{
		WM: WMConfig{Command: "i3-msg"},
		Picker: PickerConfig{
			Command:    "rofi",
			Args:       []string{"-dmenu"},
			PromptFlag: "-p",
		},
	}
}

// Load reads the YAML file at path over the defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults. Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects a configuration without a command to run.
func (c Config) Validate() error {
	if c.WM.Command == "" {
		return errors.New("config: wm.command must not be empty")
	}
	if c.Picker.Command == "" {
		return errors.New("config: picker.command must not be empty")
	}
	return nil
}
