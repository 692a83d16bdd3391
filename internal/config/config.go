package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Name         string `yaml:"name"`
	ContentDir   string `yaml:"content-dir"`
	OutputDir    string `yaml:"output-dir"`
	StaticDir    string `yaml:"static-dir"`
	RegistryFile string `yaml:"registry-file"`
	Model        string `yaml:"model"`

	// Pointer so an explicit 0 (timeout disabled) is distinguishable
	// from the key being absent (default applies).
	TimeoutMinutes  *int `yaml:"timeout-minutes"`
	MinContentChars int  `yaml:"min-content-chars"`
}

// Load reads a YAML config file and returns a validated Config with
// relative paths resolved against projectRoot.
func Load(path, projectRoot string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg, projectRoot); err != nil {
		return nil, err
	}
	return &cfg, nil
}
