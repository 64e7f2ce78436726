/*
Copyright 2026 Cascade Design Authors. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	cascadefs "github.com/cascade-design/cascade/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "cascade"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// EnvPrefix namespaces environment variable overrides, e.g. CASCADE_PREFIX.
const EnvPrefix = "CASCADE"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json"}

// Load searches for .config/cascade.{yaml,yml,json} from rootDir and
// decodes the first match. When no file exists the defaults still apply,
// as do CASCADE_* environment overrides; Load never treats a missing
// file as an error.
func Load(filesystem cascadefs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadPath(filesystem, configPath)
	}
	return decode(viper.New())
}

// LoadPath decodes the config file at an explicit path.
func LoadPath(filesystem cascadefs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	v := viper.New()
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		ext = "yaml"
	}
	v.SetConfigType(ext)
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	cfg, err := decode(v)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadOrDefault returns the config for rootDir, or defaults on any error.
func LoadOrDefault(filesystem cascadefs.FileSystem, rootDir string) *Config {
	cfg, err := Load(filesystem, rootDir)
	if err != nil {
		return Default()
	}
	return cfg
}

// decode applies defaults and environment overrides, then unmarshals.
func decode(v *viper.Viper) (*Config, error) {
	defaults := Default()
	v.SetDefault("prefix", defaults.Prefix)
	v.SetDefault("separator", defaults.Separator)
	v.SetDefault("selector", defaults.Selector)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("out", defaults.Out)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ExpandFiles expands glob patterns in Files against the filesystem,
// preserving the configured order. Non-glob paths pass through directly.
func (c *Config) ExpandFiles(filesystem cascadefs.FileSystem, rootDir string) ([]string, error) {
	var result []string
	for _, pattern := range c.Files {
		expanded, err := ExpandFile(filesystem, rootDir, pattern)
		if err != nil {
			return nil, err
		}
		result = append(result, expanded...)
	}
	return result, nil
}

// ExpandFile expands a single file path which may contain globs.
func ExpandFile(filesystem cascadefs.FileSystem, rootDir, pattern string) ([]string, error) {
	if !filepath.IsAbs(pattern) {
		pattern = filepath.Join(rootDir, pattern)
	}

	if !containsGlob(pattern) {
		return []string{pattern}, nil
	}

	return expandGlob(filesystem, pattern)
}

// containsGlob returns true if the pattern contains glob characters.
func containsGlob(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}

// expandGlob walks the filesystem from the pattern's non-glob prefix and
// collects files matching the remainder, in walk order.
func expandGlob(filesystem cascadefs.FileSystem, pattern string) ([]string, error) {
	baseDir := pattern
	for containsGlob(baseDir) {
		baseDir = filepath.Dir(baseDir)
	}

	relPattern := strings.TrimPrefix(pattern, baseDir)
	relPattern = strings.TrimPrefix(relPattern, string(filepath.Separator))

	var matches []string

	err := fs.WalkDir(filesystem, baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		relPath := strings.TrimPrefix(path, baseDir)
		relPath = strings.TrimPrefix(relPath, string(filepath.Separator))

		if matched, _ := doublestar.Match(relPattern, relPath); matched {
			matches = append(matches, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return matches, nil
}
