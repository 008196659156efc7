package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/scrgen/pkg/errors"
)

// fileConfig models a scrgen configuration file. Every field mirrors a
// generate flag; unset fields leave the flag value alone.
type fileConfig struct {
	SrcDir               string            `toml:"srcdir" yaml:"srcdir"`
	DestDir              string            `toml:"destdir" yaml:"destdir"`
	BaseDir              string            `toml:"basedir" yaml:"basedir"`
	Classpath            []string          `toml:"classpath" yaml:"classpath"`
	Includes             []string          `toml:"includes" yaml:"includes"`
	Excludes             []string          `toml:"excludes" yaml:"excludes"`
	DefaultExcludes      *bool             `toml:"default_excludes" yaml:"default_excludes"`
	FinalName            string            `toml:"final_name" yaml:"final_name"`
	MetatypeName         string            `toml:"metatype_name" yaml:"metatype_name"`
	GenerateAccessors    *bool             `toml:"generate_accessors" yaml:"generate_accessors"`
	StrictMode           *bool             `toml:"strict_mode" yaml:"strict_mode"`
	SpecVersion          string            `toml:"spec_version" yaml:"spec_version"`
	AnnotationProcessors []string          `toml:"annotation_processors" yaml:"annotation_processors"`
	Properties           map[string]string `toml:"properties" yaml:"properties"`
	Generator            string            `toml:"generator" yaml:"generator"`
}

// loadConfig reads a TOML or YAML config file, chosen by extension.
// Relative paths in the file are resolved against the file's directory.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read config file %s", path)
	}

	var cfg fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config file %s", path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "invalid config file %s", path)
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidConfig, "unsupported config file type %q (use .toml, .yaml or .yml)", ext)
	}

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot resolve config directory for %s", path)
	}
	cfg.resolvePaths(dir)
	return &cfg, nil
}

// resolvePaths makes relative directory and classpath entries absolute against dir.
func (c *fileConfig) resolvePaths(dir string) {
	c.SrcDir = resolveAgainst(dir, c.SrcDir)
	c.DestDir = resolveAgainst(dir, c.DestDir)
	c.BaseDir = resolveAgainst(dir, c.BaseDir)
	for i, entry := range c.Classpath {
		elems := filepath.SplitList(entry)
		for j, e := range elems {
			elems[j] = resolveAgainst(dir, strings.TrimSpace(e))
		}
		c.Classpath[i] = strings.Join(elems, string(filepath.ListSeparator))
	}
}

func resolveAgainst(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
