package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// File represents the structure of the .hashsim configuration file.
// Every field is optional; zero values mean "keep the default".
type File struct {
	// Output overrides the artifact directory.
	Output string `yaml:"output,omitempty"`

	// PasswordCount overrides the generated corpus size.
	PasswordCount int `yaml:"passwordCount,omitempty"`

	// SmallDictSize and LargeDictSize override the attacker dictionary
	// prefix lengths.
	SmallDictSize int `yaml:"smallDictSize,omitempty"`
	LargeDictSize int `yaml:"largeDictSize,omitempty"`

	// Seed overrides the default RNG seed.
	Seed int64 `yaml:"seed,omitempty"`

	// Probabilities overrides the crack-model constants wholesale.
	// When the block is present in the file, every field in it applies;
	// a nil block keeps the defaults.
	Probabilities *Probabilities `yaml:"probabilities,omitempty"`
}

// LoadConfigFile loads a .hashsim file from path.
// If the file does not exist, it returns ErrConfigNotFound; callers decide
// whether that is fatal based on whether the path was user-supplied.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .hashsim in the current directory
// 3. Look for config.yaml in the XDG config directory for hashsim
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		candidate := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	candidate := filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
	if _, err := os.Stat(candidate); err == nil {
		return candidate
	}
	return ""
}

// Apply merges the file's values into cfg. Zero values in the file leave
// the corresponding cfg field untouched.
func (f *File) Apply(cfg *Config) {
	if f == nil {
		return
	}
	if f.Output != "" {
		cfg.OutputDir = f.Output
	}
	if f.PasswordCount != 0 {
		cfg.PasswordCount = f.PasswordCount
	}
	if f.SmallDictSize != 0 {
		cfg.SmallDictSize = f.SmallDictSize
	}
	if f.LargeDictSize != 0 {
		cfg.LargeDictSize = f.LargeDictSize
	}
	if f.Seed != 0 {
		cfg.Seed = f.Seed
	}
	if f.Probabilities != nil {
		cfg.Probabilities = *f.Probabilities
	}
}

// WriteDefault writes a starter configuration file carrying the default
// model constants to path. It refuses to overwrite an existing file.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists, refusing to overwrite", path)
	}

	probs := DefaultProbabilities()
	f := File{
		Output:        DefaultOutputDir,
		PasswordCount: DefaultPasswordCount,
		SmallDictSize: DefaultSmallDictSize,
		LargeDictSize: DefaultLargeDictSize,
		Seed:          DefaultSeed,
		Probabilities: &probs,
	}

	data, err := yaml.Marshal(&f)
	if err != nil {
		return fmt.Errorf("marshal default config: %w", err)
	}

	header := []byte("# hashsim configuration.\n" +
		"# The probabilities block holds the crack-model constants. They are\n" +
		"# illustrative values, not validated security claims.\n")
	return os.WriteFile(path, append(header, data...), 0600)
}
