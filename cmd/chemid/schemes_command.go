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
	"strings"

	"github.com/spf13/cobra"

	"dirpx.dev/chemid/chemcore/model/registry"
)

type schemeView struct {
	Token        string `json:"token" yaml:"token"`
	Title        string `json:"title" yaml:"title"`
	Label        string `json:"label" yaml:"label"`
	NumberFormat string `json:"numberFormat" yaml:"numberFormat"`
	Example      string `json:"example" yaml:"example"`
}

func newSchemesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "schemes",
		Short: "List the supported identifier schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}

			views := schemeViews(registry.Schemes())
			return writeOutput(cmd, format, views, renderer{
				table: func(bool) string { return schemesTable(views) },
				plain: func() string { return schemesPlain(views) },
			})
		},
	}
}

func schemeViews(schemes []registry.Scheme) []schemeView {
	views := make([]schemeView, 0, len(schemes))
	for _, s := range schemes {
		views = append(views, schemeView{
			Token:        s.String(),
			Title:        s.Title(),
			Label:        s.Label(),
			NumberFormat: s.NumberFormat(),
			Example:      s.Example(),
		})
	}
	return views
}

func schemesTable(views []schemeView) string {
	rows := make([][]string, 0, len(views))
	for _, v := range views {
		rows = append(rows, []string{v.Token, v.Title, v.Label, v.NumberFormat, v.Example})
	}
	return renderTable([]string{"Scheme", "Title", "Type", "Number format", "Example"}, rows, nil)
}

func schemesPlain(views []schemeView) string {
	var b strings.Builder
	for _, v := range views {
		b.WriteString(v.Token)
		b.WriteByte('\n')
	}
	return b.String()
}
