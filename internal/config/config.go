package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type TablesConfig struct {
	Categories string `yaml:"categories,omitempty"`
	Products   string `yaml:"products,omitempty"`
}

// ProjectConfig mirrors productseed.yaml. Every field is optional.
type ProjectConfig struct {
	ImagesDir string       `yaml:"images_dir,omitempty"`
	Output    string       `yaml:"output,omitempty"`
	Charset   string       `yaml:"charset,omitempty"`
	Tables    TablesConfig `yaml:"tables,omitempty"`
}

// Load reads and decodes the config file at path.
func Load(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes cfg to path as YAML.
func Save(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
