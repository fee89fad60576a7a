package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the schema of the optional config file.
type FileConfig struct {
	CacheDir  string        `yaml:"cacheDir"`
	Timeout   time.Duration `yaml:"timeout"`
	Rate      float64       `yaml:"rate"`
	Store     string        `yaml:"store"`
	Extractor string        `yaml:"extractor"`
	NoCache   bool          `yaml:"noCache"`
	Verbose   bool          `yaml:"verbose"`
}

// LoadConfigFile reads a YAML config file into FileConfig. JSON files
// parse too, since JSON is valid YAML.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := yaml.Unmarshal(b, &fc); err != nil {
		return fc, fmt.Errorf("parse config: %w", err)
	}
	return fc, nil
}
