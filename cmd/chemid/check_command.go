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
	"time"

	"github.com/spf13/cobra"

	"dirpx.dev/chemid/chemcore/model"
	"dirpx.dev/chemid/chemcore/model/registry"
)

// checkReport is every stage of one scheme's check on a single candidate.
type checkReport struct {
	Scheme   registry.Scheme  `json:"scheme" yaml:"scheme"`
	Format   registry.Outcome `json:"format" yaml:"format"`
	Checksum registry.Outcome `json:"checksum" yaml:"checksum"`
	Result   registry.Result  `json:"result" yaml:"result"`
}

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check SCHEME VALUE",
		Short: "Run the format, checksum and combined checks of one scheme",
		Long: `Check runs a single scheme's format check, its checksum validator and the
combined check on VALUE and prints all three.

SCHEME is one of cas, ec, ke-annex-1, ke-annex-2, or ke to try both KE
annexes. Unlike identify, the checksum stage runs even when the format check
fails, which shows why a candidate was rejected.`,
		Example: `  chemid check cas 7732-18-5
  chemid check ke 2022-1-1290 --as-of 2024-01-01`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}
			asOf, err := ctx.referenceDate()
			if err != nil {
				return err
			}

			report, err := buildCheckReport(args[0], args[1], asOf)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("scheme", report.Scheme.String()).
				Bool("format", report.Format.Success).
				Bool("checksum", report.Checksum.Success).
				Str("failure", report.Result.Failure.String()).
				Msg("candidate checked")

			return writeModel(cmd, format, report, renderer{
				table: report.table,
				plain: report.plain,
			})
		},
	}
}

func buildCheckReport(schemeName, value string, asOf time.Time) (checkReport, error) {
	if strings.EqualFold(strings.TrimSpace(schemeName), "ke") {
		format := registry.CheckFormatKE(value)
		checksum := registry.CheckChecksumKE(value, asOf)
		result := registry.NewIdentifier(asOf, registry.SchemeKEAnnex1, registry.SchemeKEAnnex2).Identify(value)
		return checkReport{
			Scheme:   format.Scheme,
			Format:   format,
			Checksum: checksum,
			Result:   result,
		}, nil
	}

	scheme, err := registry.ParseScheme(schemeName)
	if err != nil {
		return checkReport{}, err
	}
	if !scheme.Known() {
		return checkReport{}, fmt.Errorf("scheme %q does not name a registry", schemeName)
	}
	return checkReport{
		Scheme:   scheme,
		Format:   scheme.Format(value),
		Checksum: scheme.Checksum(value, asOf),
		Result:   scheme.Check(value, asOf),
	}, nil
}

// Validate checks every stage of the report.
func (r checkReport) Validate() error {
	if err := model.ValidateAll([]registry.Outcome{r.Format, r.Checksum}); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if err := r.Result.Validate(); err != nil {
		return fmt.Errorf("check: %w", err)
	}
	return nil
}

// TypeName returns "CheckReport".
func (r checkReport) TypeName() string { return "CheckReport" }

func (r checkReport) table(colorize bool) string {
	rows := [][]string{
		{"format", colorStatus(outcomeStatus(r.Format), colorize), r.Format.Message},
		{"checksum", colorStatus(outcomeStatus(r.Checksum), colorize), r.Checksum.Message},
		{"result", colorStatus(resultStatus(r.Result), colorize), r.Result.Message},
	}
	return renderTable([]string{"Stage", "Status", "Message"}, rows, nil)
}

func (r checkReport) plain() string {
	return fmt.Sprintf("format\t%s\nchecksum\t%s\nresult\t%s\n",
		outcomeStatus(r.Format), outcomeStatus(r.Checksum), resultStatus(r.Result))
}
