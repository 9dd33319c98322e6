package project

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"flint/internal/trace"
)

// Config mirrors flint.toml. Every key is optional.
type Config struct {
	Build BuildConfig `toml:"build"`
	Trace TraceConfig `toml:"trace"`
}

type BuildConfig struct {
	MaxDiagnostics   int      `toml:"max_diagnostics"`
	SystemLibraryDir string   `toml:"system_library_dir"`
	LibraryDirs      []string `toml:"library_dirs"`
}

type TraceConfig struct {
	Level string `toml:"level"`
	// Mode is stream, ring or both; ring events are written out only when
	// a command fails.
	Mode   string `toml:"mode"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

var (
	// ErrUnknownKey is wrapped when flint.toml has keys flint does not read.
	ErrUnknownKey = errors.New("unknown key")
	// ErrInvalidValue is wrapped when a key has an unusable value.
	ErrInvalidValue = errors.New("invalid value")
)

// DefaultConfig is used when there is no flint.toml.
func DefaultConfig() Config {
	return Config{
		Build: BuildConfig{
			MaxDiagnostics:   100,
			SystemLibraryDir: "/usr/lib",
		},
		Trace: TraceConfig{
			Level:  "off",
			Mode:   "stream",
			Format: "auto",
			Output: "-",
		},
	}
}

// LoadConfig parses path over DefaultConfig. Relative library directories
// are taken relative to the manifest.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%s: %w: %s", path, ErrUnknownKey, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	root := filepath.Dir(path)
	for i, dir := range cfg.Build.LibraryDirs {
		if !filepath.IsAbs(dir) {
			cfg.Build.LibraryDirs[i] = filepath.Join(root, dir)
		}
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Build.MaxDiagnostics < 0 {
		return fmt.Errorf("%w: [build].max_diagnostics must not be negative", ErrInvalidValue)
	}
	if strings.TrimSpace(c.Build.SystemLibraryDir) == "" {
		return fmt.Errorf("%w: [build].system_library_dir is empty", ErrInvalidValue)
	}
	if _, err := trace.ParseLevel(c.Trace.Level); err != nil {
		return fmt.Errorf("%w: [trace].level: %w", ErrInvalidValue, err)
	}
	if _, err := trace.ParseMode(c.Trace.Mode); err != nil {
		return fmt.Errorf("%w: [trace].mode: %w", ErrInvalidValue, err)
	}
	if _, err := trace.ParseFormat(c.Trace.Format); err != nil {
		return fmt.Errorf("%w: [trace].format: %w", ErrInvalidValue, err)
	}
	return nil
}
