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

package registry_test

import (
	"testing"

	"dirpx.dev/chemid/chemcore/model/registry"
)

func TestCheckFormat(t *testing.T) {
	tests := []struct {
		name  string
		check func(string) registry.Outcome
		input string
		want  bool
	}{
		{"cas water", registry.CheckFormatCAS, "7732-18-5", true},
		{"cas two digit body", registry.CheckFormatCAS, "64-17-5", true},
		{"cas seven digit body", registry.CheckFormatCAS, "1234567-89-5", true},
		{"cas one digit body", registry.CheckFormatCAS, "7-18-5", false},
		{"cas eight digit body", registry.CheckFormatCAS, "12345678-90-1", false},
		{"cas two check digits", registry.CheckFormatCAS, "7732-18-50", false},
		{"cas short middle", registry.CheckFormatCAS, "7732-1-5", false},
		{"cas leading space", registry.CheckFormatCAS, " 7732-18-5", false},
		{"cas trailing newline", registry.CheckFormatCAS, "7732-18-5\n", false},
		{"cas arabic-indic digits", registry.CheckFormatCAS, "٧٧٣٢-١٨-٥", false},
		{"cas empty", registry.CheckFormatCAS, "", false},

		{"ec", registry.CheckFormatEC, "200-003-9", true},
		{"ec checksum ignored", registry.CheckFormatEC, "123-456-7", true},
		{"ec two check digits", registry.CheckFormatEC, "200-003-99", false},
		{"ec long body", registry.CheckFormatEC, "2000-003-9", false},
		{"ec letters", registry.CheckFormatEC, "2a0-003-9", false},

		{"ke1", registry.CheckFormatKEAnnex1, "KE-12345", true},
		{"ke1 six digits", registry.CheckFormatKEAnnex1, "KE-123456", false},
		{"ke1 four digits", registry.CheckFormatKEAnnex1, "KE-1234", false},
		{"ke1 lowercase prefix", registry.CheckFormatKEAnnex1, "ke-12345", false},

		{"ke2", registry.CheckFormatKEAnnex2, "2022-1-1290", true},
		{"ke2 one sequence digit", registry.CheckFormatKEAnnex2, "2022-1-1", true},
		{"ke2 five sequence digits", registry.CheckFormatKEAnnex2, "2022-1-12345", false},
		{"ke2 two middle digits", registry.CheckFormatKEAnnex2, "2022-12-1", false},
		{"ke2 short year", registry.CheckFormatKEAnnex2, "22-1-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.check(tt.input)
			if got.Success != tt.want {
				t.Errorf("Success = %v, want %v (%s)", got.Success, tt.want, got.Message)
			}
			want := tt.input + " is not formatted correctly"
			if tt.want {
				want = tt.input + " is formatted correctly"
			}
			if got.Message != want {
				t.Errorf("Message = %q, want %q", got.Message, want)
			}
			if got.Input != tt.input {
				t.Errorf("Input = %q, want %q", got.Input, tt.input)
			}
			if !got.Scheme.Known() {
				t.Errorf("Scheme = %v, want a known scheme", got.Scheme)
			}
		})
	}
}

func TestCheckFormatKE(t *testing.T) {
	tests := []struct {
		input   string
		success bool
		scheme  registry.Scheme
		message string
	}{
		{"KE-12345", true, registry.SchemeKEAnnex1, "KE-12345 matches KE Annex 1 numbers"},
		{"2017-2-13", true, registry.SchemeKEAnnex2, "2017-2-13 matches KE Annex 2 numbers"},
		{"7732-18-5", false, registry.SchemeUnknown, "7732-18-5 did not match either Annex numbers"},
		{"", false, registry.SchemeUnknown, " did not match either Annex numbers"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.CheckFormatKE(tt.input)
			if got.Success != tt.success || got.Scheme != tt.scheme || got.Message != tt.message {
				t.Errorf("CheckFormatKE(%q) = %v, want success=%v scheme=%v message=%q",
					tt.input, got, tt.success, tt.scheme, tt.message)
			}
		})
	}
}

func TestShapesAreDisjoint(t *testing.T) {
	inputs := []string{
		"7732-18-5", "64-17-5", "1234567-89-5", "200-003-9", "123-456-7",
		"KE-12345", "2022-1-1290", "2017-2-13", "1234-5-6", "123-45-6",
		"1234-56-7", "1234-567-8",
	}
	for _, in := range inputs {
		matched := 0
		for _, s := range registry.Schemes() {
			if s.Format(in).Success {
				matched++
			}
		}
		if matched > 1 {
			t.Errorf("%q matches %d shapes, want at most 1", in, matched)
		}
	}
}
