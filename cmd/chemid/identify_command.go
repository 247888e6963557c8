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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"dirpx.dev/chemid/chemcore/model"
	"dirpx.dev/chemid/chemcore/model/registry"
)

var errUnsuccessful = errors.New("not every candidate is a valid identifier")

func newIdentifyCommand(ctx *commandContext) *cobra.Command {
	var file string
	var schemes []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "identify [value...]",
		Short: "Identify which registry each candidate belongs to",
		Long: `Identify classifies each candidate as a CAS, EC, KE Annex 1 or KE Annex 2
number and reports whether its check digit is valid.

Candidates come from the arguments, from --file (a YAML or JSON list), or,
when neither is given, from stdin, one per line.`,
		Example: `  chemid identify 7732-18-5 200-003-9
  chemid identify --scheme cas --scheme ec --output json 64-17-5
  chemid identify --file candidates.yaml --strict
  cat list.txt | chemid identify -o plain`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file != "" && len(args) > 0 {
				return errors.New("pass candidates as arguments or with --file, not both")
			}

			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			id, err := ctx.identifier(schemes)
			if err != nil {
				return err
			}

			inputs, err := collectCandidates(cmd, args, file)
			if err != nil {
				return err
			}

			results := id.IdentifyAll(inputs)
			logResults(logger, results)
			if err := model.ValidateAll(results); err != nil {
				return fmt.Errorf("identify: %w", err)
			}

			if err := writeOutput(cmd, format, results, renderer{
				table: func(colorize bool) string { return resultsTable(results, colorize) },
				plain: func() string { return resultsPlain(results) },
			}); err != nil {
				return err
			}

			if strict {
				if failed := countUnsuccessful(results); failed > 0 {
					return fmt.Errorf("%w: %d of %d failed", errUnsuccessful, failed, len(results))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read candidates from a YAML or JSON list")
	cmd.Flags().StringArrayVarP(&schemes, "scheme", "s", nil, "Only try this scheme (repeatable, tried in order)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with status 1 unless every candidate is valid")
	return cmd
}

func collectCandidates(cmd *cobra.Command, args []string, file string) ([]string, error) {
	switch {
	case len(args) > 0:
		return args, nil
	case file != "":
		value, err := readCandidateFile(file)
		if err != nil {
			return nil, err
		}
		inputs, err := registry.CandidatesFromValue(value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		return inputs, nil
	default:
		return readCandidateLines(cmd.InOrStdin())
	}
}

// readCandidateFile decodes a candidate list. Files ending in .json are
// decoded as JSON; everything else as YAML.
func readCandidateFile(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}

	var value any
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &value)
	} else {
		err = yaml.Unmarshal(data, &value)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return value, nil
}

// readCandidateLines returns the non-blank lines of r with surrounding
// whitespace removed.
func readCandidateLines(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			inputs = append(inputs, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return inputs, nil
}

func logResults(logger zerolog.Logger, results []registry.Result) {
	for i, r := range results {
		logger.Debug().
			Int("index", i).
			Str("scheme", r.Scheme.String()).
			Str("failure", r.Failure.String()).
			Bool("success", r.Success).
			Msg("candidate identified")
	}
	logger.Info().
		Int("candidates", len(results)).
		Int("unsuccessful", countUnsuccessful(results)).
		Msg("identification finished")
}

func countUnsuccessful(results []registry.Result) int {
	n := 0
	for _, r := range results {
		if !r.Success {
			n++
		}
	}
	return n
}

func resultsTable(results []registry.Result, colorize bool) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{
			r.Input,
			orDash(r.Scheme.Label()),
			colorStatus(resultStatus(r), colorize),
			r.Message,
		})
	}
	return renderTable([]string{"Input", "Type", "Status", "Message"}, rows, nil)
}

func resultsPlain(results []registry.Result) string {
	var b strings.Builder
	for _, r := range results {
		fmt.Fprintf(&b, "%s\t%s\t%s\n", r.Input, schemeToken(r.Scheme), resultStatus(r))
	}
	return b.String()
}
