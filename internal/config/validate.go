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
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/rxmerr"
	"github.com/rs/zerolog"
)

// Validate ensures the configuration is usable. Every problem is reported,
// not only the first.
func (c *Config) Validate() error {
	errs := rxmerr.NewCollector()
	for _, check := range []func() error{
		c.validateOutput,
		c.validateLogLevel,
		c.validateAsOf,
		c.validateSchemes,
	} {
		if err := check(); err != nil {
			errs.Append(err)
		}
	}
	return errs.Err()
}

// ValidateOutput reports whether name is an accepted output format.
func ValidateOutput(name string) error {
	if !slices.Contains(Outputs(), name) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(Outputs(), ", "), name)
	}
	return nil
}

func (c *Config) validateOutput() error {
	return ValidateOutput(c.Output)
}

func (c *Config) validateLogLevel() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

func (c *Config) validateAsOf() error {
	if c.AsOf == "" {
		return nil
	}
	_, err := ParseAsOf(c.AsOf)
	return err
}

func (c *Config) validateSchemes() error {
	if _, err := ParseSchemes(c.Schemes); err != nil {
		return fmt.Errorf("schemes: %w", err)
	}
	return nil
}
