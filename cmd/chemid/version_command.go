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
	"strconv"

	"github.com/spf13/cobra"

	"dirpx.dev/chemid/internal/buildinfo"
)

// versionView is the encoded form of the build version.
type versionView struct {
	Version    string `json:"version" yaml:"version"`
	Major      uint64 `json:"major" yaml:"major"`
	Minor      uint64 `json:"minor" yaml:"minor"`
	Patch      uint64 `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Metadata   string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	Stable     bool   `json:"stable" yaml:"stable"`
}

func newVersionView(info buildinfo.Info) versionView {
	return versionView{
		Version:    info.Version,
		Major:      info.Major,
		Minor:      info.Minor,
		Patch:      info.Patch,
		Prerelease: info.Prerelease,
		Metadata:   info.Metadata,
		Stable:     info.Stable(),
	}
}

// Validate checks that the fields are the ones Version parses to.
func (v versionView) Validate() error {
	info, err := buildinfo.Parse(v.Version)
	if err != nil {
		return err
	}
	if newVersionView(info) != v {
		return fmt.Errorf("version fields disagree with %q", v.Version)
	}
	return nil
}

// TypeName returns "Version".
func (v versionView) TypeName() string { return "Version" }

func (v versionView) table(bool) string {
	return renderTable(
		[]string{"Version", "Major", "Minor", "Patch", "Prerelease", "Metadata", "Stable"},
		[][]string{{
			v.Version,
			strconv.FormatUint(v.Major, 10),
			strconv.FormatUint(v.Minor, 10),
			strconv.FormatUint(v.Patch, 10),
			orDash(v.Prerelease),
			orDash(v.Metadata),
			strconv.FormatBool(v.Stable),
		}},
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	)
}

func (v versionView) plain() string {
	return fmt.Sprintf("chemid %s\nprerelease\t%s\nmetadata\t%s\nstable\t%t\n",
		v.Version, orDash(v.Prerelease), orDash(v.Metadata), v.Stable)
}

func newVersionCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the chemid version",
		Long: `Version prints the version chemid was built as, split into its SemVer
parts, and whether it is a stable release (major version above zero and no
prerelease).`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ctx.outputFormat()
			if err != nil {
				return err
			}
			info, err := buildinfo.Current()
			if err != nil {
				return err
			}
			view := newVersionView(info)
			return writeModel(cmd, format, view, renderer{
				table: view.table,
				plain: view.plain,
			})
		},
	}
}
