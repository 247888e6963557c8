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
	"github.com/spf13/cobra"
)

type rootFlags struct {
	config   string
	output   string
	logLevel string
	asOf     string
}

func newRootCommand() *cobra.Command {
	var flags rootFlags

	ctx := newCommandContext(&flags)

	rootCmd := &cobra.Command{
		Use:   "chemid",
		Short: "Validate CAS, EC and KE chemical identifiers",
		Long: `chemid checks chemical registry numbers: CAS Registry Numbers, EC
(European Community) numbers and Kenyan KE Annex 1 and Annex 2 codes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path (default ~/.config/chemid/config.toml)")
	pf.StringVarP(&flags.output, "output", "o", "", "Output format: table, json, yaml or plain")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: trace, debug, info, warn, error or disabled")
	pf.StringVar(&flags.asOf, "as-of", "", "Reference date (YYYY-MM-DD) for KE Annex 2 years")

	rootCmd.AddCommand(newIdentifyCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newSchemesCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newVersionCommand(ctx))

	return rootCmd
}
