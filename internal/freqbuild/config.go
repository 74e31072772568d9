package freqbuild

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds frequency-list build settings.
type Config struct {
	NLTPath      string `yaml:"nlt_path"      env:"FREQLIST_NLT_PATH"`
	BCCWJPath    string `yaml:"bccwj_path"    env:"FREQLIST_BCCWJ_PATH"`
	PrimaryCap   int    `yaml:"primary_cap"   env:"FREQLIST_PRIMARY_CAP"   env-default:"51000"`
	SecondaryCap int    `yaml:"secondary_cap" env:"FREQLIST_SECONDARY_CAP" env-default:"70000"`
	BatchSize    int    `yaml:"batch_size"    env:"FREQLIST_BATCH_SIZE"    env-default:"1000"`
	DryRun       bool   `yaml:"dry_run"       env:"FREQLIST_DRY_RUN"`
}

// LoadConfig reads build configuration from a YAML file and environment
// variables. Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("freqbuild config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("freqbuild config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("freqbuild config: read env: %w", err)
	}

	return &cfg, nil
}
