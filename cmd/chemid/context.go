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

package main

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"dirpx.dev/chemid/chemcore/model/registry"
	"dirpx.dev/chemid/internal/config"
	"dirpx.dev/chemid/internal/logging"
)

type commandContext struct {
	flags *rootFlags
	now   func() time.Time

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(flags *rootFlags) *commandContext {
	return &commandContext{
		flags: flags,
		now:   time.Now,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, path, exists, err := config.Load(strings.TrimSpace(c.flags.config))
		if err != nil {
			c.configErr = fmt.Errorf("load config: %w", err)
			return
		}
		c.config = cfg
		c.configPath = path
		c.configExists = exists
	})
	return c.config, c.configErr
}

// outputFormat returns --output when set, the configured format otherwise.
func (c *commandContext) outputFormat() (string, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	format := strings.ToLower(strings.TrimSpace(c.flags.output))
	if format == "" {
		format = cfg.Output
	}
	if err := config.ValidateOutput(format); err != nil {
		return "", err
	}
	return format, nil
}

// logger builds a logger on the command's stderr.
func (c *commandContext) logger(cmd *cobra.Command) (zerolog.Logger, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return zerolog.Nop(), err
	}
	level := c.flags.logLevel
	if strings.TrimSpace(level) == "" {
		level = cfg.LogLevel
	}
	logger, err := logging.New(cmd.ErrOrStderr(), level)
	if err != nil {
		return zerolog.Nop(), err
	}
	logger = logger.With().Str("command", cmd.Name()).Logger()
	logger.Debug().
		Str("path", c.configPath).
		Bool("exists", c.configExists).
		Msg("configuration resolved")
	return logger, nil
}

// referenceDate returns --as-of when set, then the configured as_of, then
// the current date.
func (c *commandContext) referenceDate() (time.Time, error) {
	if value := strings.TrimSpace(c.flags.asOf); value != "" {
		return config.ParseAsOf(value)
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return time.Time{}, err
	}
	return cfg.ReferenceDate(c.now())
}

// identifier builds the dispatcher. Scheme names from the command line win
// over the configured list.
func (c *commandContext) identifier(schemeFlags []string) (*registry.Identifier, error) {
	asOf, err := c.referenceDate()
	if err != nil {
		return nil, err
	}

	var schemes []registry.Scheme
	if len(schemeFlags) > 0 {
		schemes, err = config.ParseSchemes(schemeFlags)
	} else {
		cfg, cfgErr := c.ensureConfig()
		if cfgErr != nil {
			return nil, cfgErr
		}
		schemes, err = cfg.SchemeList()
	}
	if err != nil {
		return nil, err
	}
	return registry.NewIdentifier(asOf, schemes...), nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
