/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"dirpx.dev/chemid/chemcore/model/registry"
	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Config holds every setting the CLI reads from file.
type Config struct {
	// Output is the default output format: table, json, yaml or plain.
	Output string `toml:"output"`

	// LogLevel is a zerolog level name.
	LogLevel string `toml:"log_level"`

	// AsOf is the reference date (YYYY-MM-DD) for date-bounded schemes.
	// Empty means the current date.
	AsOf string `toml:"as_of"`

	// Schemes restricts and orders the schemes the identifier tries.
	// Empty means every scheme in the default order.
	Schemes []string `toml:"schemes"`
}

// Load locates, parses, and validates a configuration file.
//
// An empty path selects the default location. A file that does not exist is
// not an error; the defaults are returned and exists reports false.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		decoder.DisallowUnknownFields()
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config %s: %w", resolvedPath, err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, fmt.Errorf("config %s: %w", resolvedPath, err)
	}

	return &cfg, resolvedPath, exists, nil
}

// DefaultConfigPath returns the expanded default configuration path.
func DefaultConfigPath() (string, error) {
	return expandPath(defaultConfigPath)
}

func resolveConfigPath(path string) (string, bool, error) {
	if path == "" {
		path = defaultConfigPath
	}
	expanded, err := expandPath(path)
	if err != nil {
		return "", false, err
	}
	info, err := os.Stat(expanded)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return expanded, false, nil
		}
		return "", false, fmt.Errorf("stat config: %w", err)
	}
	if info.IsDir() {
		return "", false, fmt.Errorf("config path %s is a directory", expanded)
	}
	return expanded, true, nil
}

// ReferenceDate returns the configured as_of date, or now when none is set.
func (c *Config) ReferenceDate(now time.Time) (time.Time, error) {
	if c.AsOf == "" {
		return now, nil
	}
	return ParseAsOf(c.AsOf)
}

// ParseAsOf parses a YYYY-MM-DD date in UTC.
func ParseAsOf(value string) (time.Time, error) {
	t, err := time.ParseInLocation(AsOfLayout, strings.TrimSpace(value), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("as_of must be YYYY-MM-DD: %w", err)
	}
	return t, nil
}

// SchemeList parses Schemes. An empty list yields nil, which the identifier
// treats as every scheme.
func (c *Config) SchemeList() ([]registry.Scheme, error) {
	return ParseSchemes(c.Schemes)
}

// ParseSchemes parses scheme names with registry.ParseScheme. "unknown" is
// rejected because it names no scheme.
func ParseSchemes(names []string) ([]registry.Scheme, error) {
	if len(names) == 0 {
		return nil, nil
	}
	out := make([]registry.Scheme, 0, len(names))
	for _, name := range names {
		s, err := registry.ParseScheme(name)
		if err != nil {
			return nil, err
		}
		if !s.Known() {
			return nil, fmt.Errorf("scheme %q does not name a registry", name)
		}
		out = append(out, s)
	}
	return out, nil
}

// CreateSample writes a sample configuration file to path, creating its
// directory when needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}
