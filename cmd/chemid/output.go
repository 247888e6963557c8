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
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/chemid/chemcore/model"
	"dirpx.dev/chemid/chemcore/model/registry"
	"dirpx.dev/chemid/internal/config"
	"dirpx.dev/chemid/internal/logging"
)

const (
	statusValid     = "valid"
	statusInvalid   = "invalid"
	statusUnmatched = "unmatched"
	statusPass      = "pass"
	statusFail      = "fail"
)

// renderer supplies the human-readable forms of a payload.
type renderer struct {
	table func(colorize bool) string
	plain func() string
}

// writeOutput encodes v in the requested format to the command's stdout.
func writeOutput(cmd *cobra.Command, format string, v any, r renderer) error {
	out := cmd.OutOrStdout()
	switch format {
	case config.OutputJSON:
		return writeJSON(cmd, v)
	case config.OutputYAML:
		return writeYAML(cmd, v)
	case config.OutputPlain:
		_, err := fmt.Fprint(out, r.plain())
		return err
	case config.OutputTable:
		_, err := fmt.Fprintln(out, r.table(shouldColorize(cmd)))
		return err
	default:
		return config.ValidateOutput(format)
	}
}

// writeModel writes a single model. JSON and YAML go through the model
// encoders, which refuse values that fail validation.
func writeModel[T model.Checked](cmd *cobra.Command, format string, m T, r renderer) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case config.OutputJSON:
		data, err = model.ToJSON(m)
	case config.OutputYAML:
		data, err = model.ToYAML(m)
	default:
		return writeOutput(cmd, format, m, r)
	}
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeYAML encodes v as YAML to the command's stdout.
func writeYAML(cmd *cobra.Command, v any) error {
	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func shouldColorize(cmd *cobra.Command) bool {
	return logging.IsTerminal(cmd.OutOrStdout())
}

func resultStatus(r registry.Result) string {
	switch {
	case r.Success:
		return statusValid
	case r.CloseMatch():
		return statusInvalid
	default:
		return statusUnmatched
	}
}

func outcomeStatus(o registry.Outcome) string {
	if o.Success {
		return statusPass
	}
	return statusFail
}

// schemeToken returns the scheme's token, or "-" when no scheme matched.
func schemeToken(s registry.Scheme) string {
	if !s.Known() {
		return "-"
	}
	return s.String()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
