package platform

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config errors.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
)

// ConfigFileName is the project config file name.
const ConfigFileName = ".docindex.yaml"

// Output formats accepted by the CLI.
var OutputFormats = []string{"table", "json", "yaml", "csv"}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds the CLI settings.
type Config struct {
	Index    string `yaml:"index"`
	Output   string `yaml:"output"`
	LogLevel string `yaml:"log_level"`

	// IndexAbs is Index resolved to an absolute path.
	IndexAbs string `yaml:"-"`

	// Sources tracks which config files were loaded.
	Sources ConfigSources `yaml:"-"`
}

// ConfigSources tracks which config files were loaded.
type ConfigSources struct {
	Global  string
	Project string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Index:    "index.json",
		Output:   "table",
		LogLevel: "warn",
	}
}

// Level maps LogLevel to a slog level. Unknown values fall back to warn.
func (c Config) Level() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelWarn
}

// LoadConfigInput holds the inputs for LoadConfig.
type LoadConfigInput struct {
	WorkDir        string            // if empty, os.Getwd() is used
	ConfigPath     string            // --config flag value
	IndexOverride  string            // --index flag value
	OutputOverride string            // --output flag value
	Env            map[string]string // environment variables
}

// LoadConfig loads configuration with the following precedence (highest wins):
//  1. Defaults
//  2. Global user config ($XDG_CONFIG_HOME/docindex/config.yaml or ~/.config/docindex/config.yaml)
//  3. Project config (.docindex.yaml in the working directory or a parent)
//  4. Explicit config file via ConfigPath, which replaces the project lookup
//  5. CLI overrides
//
// A relative index path from a config file is resolved against that file's
// directory; from defaults, the global config or flags against WorkDir.
func LoadConfig(input LoadConfigInput) (Config, error) {
	workDir := input.WorkDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	cfg := DefaultConfig()
	indexBase := workDir

	if path := globalConfigPath(input.Env); path != "" {
		global, loaded, err := loadConfigFile(path, false)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = mergeConfig(cfg, global)
			cfg.Sources.Global = path
		}
	}

	projectPath, mustExist, err := projectConfigPath(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}
	if projectPath != "" {
		project, loaded, err := loadConfigFile(projectPath, mustExist)
		if err != nil {
			return Config{}, err
		}
		if loaded {
			cfg = mergeConfig(cfg, project)
			cfg.Sources.Project = projectPath
			if project.Index != "" {
				indexBase = filepath.Dir(projectPath)
			}
		}
	}

	if input.IndexOverride != "" {
		cfg.Index = input.IndexOverride
		indexBase = workDir
	}
	if input.OutputOverride != "" {
		cfg.Output = input.OutputOverride
	}

	if err := validateConfig(cfg); err != nil {
		return Config{}, err
	}

	if filepath.IsAbs(cfg.Index) {
		cfg.IndexAbs = cfg.Index
	} else {
		cfg.IndexAbs = filepath.Join(indexBase, cfg.Index)
	}
	return cfg, nil
}

// globalConfigPath returns the path of the global config file, or "" when
// no home directory is known.
func globalConfigPath(env map[string]string) string {
	if xdg := env["XDG_CONFIG_HOME"]; xdg != "" {
		return filepath.Join(xdg, "docindex", "config.yaml")
	}
	if home := env["HOME"]; home != "" {
		return filepath.Join(home, ".config", "docindex", "config.yaml")
	}
	return ""
}

// projectConfigPath picks the explicit config file, which must exist, or
// the nearest project config.
func projectConfigPath(workDir, explicit string) (string, bool, error) {
	if explicit != "" {
		path := explicit
		if !filepath.IsAbs(path) {
			path = filepath.Join(workDir, path)
		}
		if _, err := os.Stat(path); err != nil {
			return "", false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, explicit)
		}
		return path, true, nil
	}

	path, err := FindProjectConfig(workDir)
	if errors.Is(err, ErrNoProjectConfig) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return path, false, nil
}

// loadConfigFile reads one config file. A missing optional file is not an
// error and reports loaded=false.
func loadConfigFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !mustExist {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("%w: %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parseConfig(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}
	return cfg, true, nil
}

func parseConfig(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfig overlays the non-empty fields of override onto base.
func mergeConfig(base, override Config) Config {
	if override.Index != "" {
		base.Index = override.Index
	}
	if override.Output != "" {
		base.Output = override.Output
	}
	if override.LogLevel != "" {
		base.LogLevel = override.LogLevel
	}
	return base
}

func validateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.Index) == "" {
		return fmt.Errorf("%w: index must not be empty", ErrConfigInvalid)
	}
	if !slices.Contains(OutputFormats, cfg.Output) {
		return fmt.Errorf("%w: output %q must be one of %s", ErrConfigInvalid, cfg.Output, strings.Join(OutputFormats, ", "))
	}
	if _, ok := logLevels[strings.ToLower(cfg.LogLevel)]; !ok {
		return fmt.Errorf("%w: unknown log_level %q", ErrConfigInvalid, cfg.LogLevel)
	}
	return nil
}
