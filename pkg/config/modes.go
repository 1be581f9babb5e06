package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mhanski/gearcmd/pkg/state"
	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// ModesFile is the on-disk shape of a mode registry override:
//
//	modes:
//	  defense: [Normal, PhalanxPhysical, Seigan]
//	  weaponskill: [Normal, Selective, Skillchain]
type ModesFile struct {
	Modes map[string][]string `yaml:"modes"`
}

// DefaultModesPath returns the default location of the mode registry file.
func DefaultModesPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".gearcmd", "modes.yaml"), nil
}

// LoadModesFile reads and parses a mode registry override file.
func LoadModesFile(path string) (*ModesFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read modes file: %w", err)
	}

	var file ModesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse modes file: %w", err)
	}
	return &file, nil
}

// Apply writes the file's lists into the registry. Field names are
// canonicalized by the registry; invalid lists abort with an error.
func (f *ModesFile) Apply(reg *state.ModeRegistry) error {
	for field, values := range f.Modes {
		if err := reg.SetList(field, values); err != nil {
			return err
		}
	}
	return nil
}

// LoadRegistry builds a mode registry from built-in defaults plus the
// override file at path. An empty path tries the default location; a
// missing file at the default location is not an error.
func LoadRegistry(path string) (*state.ModeRegistry, error) {
	reg := state.NewModeRegistry()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultModesPath()
		if err != nil {
			return reg, nil
		}
		path = defaultPath
	}

	file, err := LoadModesFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return reg, nil
		}
		return nil, err
	}

	if err := file.Apply(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
