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

// Package buildinfo reports the version chemid was built as.
//
// Release builds stamp Version through the linker:
//
//	go build -ldflags "-X dirpx.dev/chemid/internal/buildinfo.Version=v1.2.0" ./cmd/chemid
package buildinfo

import (
	"fmt"
	"strconv"
	"strings"

	bsemver "github.com/blang/semver/v4"
)

// Version is the raw version string set at link time.
var Version = "0.0.0-dev"

// Info is a parsed SemVer 2.0.0 version.
type Info struct {
	Version    string `json:"version" yaml:"version"`
	Major      uint64 `json:"major" yaml:"major"`
	Minor      uint64 `json:"minor" yaml:"minor"`
	Patch      uint64 `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Metadata   string `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// Current parses Version.
func Current() (Info, error) {
	return Parse(Version)
}

// Parse parses a SemVer 2.0.0 string. A leading "v" is tolerated.
func Parse(s string) (Info, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "v")

	bv, err := bsemver.Parse(s)
	if err != nil {
		return Info{}, fmt.Errorf("invalid version format %q: %w", s, err)
	}

	pre := make([]string, 0, len(bv.Pre))
	for _, p := range bv.Pre {
		if p.IsNum {
			pre = append(pre, strconv.FormatUint(p.VersionNum, 10))
		} else {
			pre = append(pre, p.VersionStr)
		}
	}

	return Info{
		Version:    bv.String(),
		Major:      bv.Major,
		Minor:      bv.Minor,
		Patch:      bv.Patch,
		Prerelease: strings.Join(pre, "."),
		Metadata:   strings.Join(bv.Build, "."),
	}, nil
}

// Stable reports whether the version is a release: no prerelease and a
// major version above zero.
func (i Info) Stable() bool {
	return i.Prerelease == "" && i.Major > 0
}
