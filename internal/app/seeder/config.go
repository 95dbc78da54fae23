package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// ThemeSeed is one theme entry in the seed file.
type ThemeSeed struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Pages       int    `yaml:"pages"`
}

// Config holds the seed data and run options.
type Config struct {
	Themes []ThemeSeed `yaml:"themes"`
	DryRun bool        `yaml:"dry_run" env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads the seed file at path. ENV overrides scalar options.
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		return nil, fmt.Errorf("seeder config: path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("seeder config: file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
	}

	return &cfg, nil
}
