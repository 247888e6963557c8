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
	"time"

	"dirpx.dev/chemid/chemcore/model/registry"
)

func TestCheckChecksumCAS(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"7732-18-5", true},
		{"64-17-5", true},
		{"50-00-0", true},
		{"1234567-89-5", true},
		{"123-45-5", true},
		{"123-45-6", false},
		{"7732-18-6", false},

		// shape is not re-checked, broken segments just fail
		{"7732", false},
		{"7732-18", false},
		{"", false},
		{"--5", false},
		{"ab-cd-5", false},
		{"7732-18-x", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.CheckChecksumCAS(tt.input)
			if got.Success != tt.want {
				t.Errorf("CheckChecksumCAS(%q).Success = %v, want %v", tt.input, got.Success, tt.want)
			}
			want := tt.input + " is not a valid CAS number"
			if tt.want {
				want = tt.input + " is a valid CAS number"
			}
			if got.Message != want {
				t.Errorf("Message = %q, want %q", got.Message, want)
			}
			if got.Scheme != registry.SchemeCAS {
				t.Errorf("Scheme = %v, want cas", got.Scheme)
			}
		})
	}
}

func TestCheckChecksumEC(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"200-003-9", true},
		{"231-791-2", true},
		{"123-456-7", false},

		// 1*1 + 7*6 = 43, 43 mod 11 = 10, written as check digit 1
		{"100-007-1", true},
		{"100-007-0", false},

		{"200", false},
		{"200-003", false},
		{"--1", false},
		{"2a0-003-9", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.CheckChecksumEC(tt.input)
			if got.Success != tt.want {
				t.Errorf("CheckChecksumEC(%q).Success = %v, want %v", tt.input, got.Success, tt.want)
			}
			want := tt.input + " is not a valid EC number"
			if tt.want {
				want = tt.input + " is a valid EC number"
			}
			if got.Message != want {
				t.Errorf("Message = %q, want %q", got.Message, want)
			}
		})
	}
}

func TestCheckChecksumKEAnnex1(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"KE-12345", true},
		{"KE-1234", false},
		{"KE-123456", false},
		{"ABCDEFGH", true},
		{"KE-1234é", true},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.CheckChecksumKEAnnex1(tt.input)
			if got.Success != tt.want {
				t.Errorf("CheckChecksumKEAnnex1(%q).Success = %v, want %v", tt.input, got.Success, tt.want)
			}
			want := tt.input + " is not a valid Annex 1 KE number"
			if tt.want {
				want = tt.input + " is a valid Annex 1 KE number"
			}
			if got.Message != want {
				t.Errorf("Message = %q, want %q", got.Message, want)
			}
		})
	}
}

func TestCheckChecksumKEAnnex2(t *testing.T) {
	jan2024 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dec2023 := time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		asOf  time.Time
		want  bool
	}{
		{"recent", "2022-1-1290", jan2024, true},
		{"older", "2009-2-50", jan2024, true},
		{"introduction year", "1991-1-1", jan2024, true},
		{"before introduction", "1990-1-1", jan2024, false},
		{"current year", "2024-1-1", jan2024, true},
		{"next year", "2024-1-1", dec2023, false},
		{"future", "2099-1-1", jan2024, false},
		{"no year", "abc", jan2024, false},
		{"empty", "", jan2024, false},
		{"year with trailing text", "2001x-1-1", jan2024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.CheckChecksumKEAnnex2(tt.input, tt.asOf)
			if got.Success != tt.want {
				t.Errorf("CheckChecksumKEAnnex2(%q, %d).Success = %v, want %v",
					tt.input, tt.asOf.Year(), got.Success, tt.want)
			}
			want := tt.input + " is not a valid Annex 2 KE number"
			if tt.want {
				want = tt.input + " is a valid Annex 2 KE number"
			}
			if got.Message != want {
				t.Errorf("Message = %q, want %q", got.Message, want)
			}
		})
	}
}

func TestCheckChecksumKE(t *testing.T) {
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		input   string
		success bool
		scheme  registry.Scheme
		message string
	}{
		{"KE-12345", true, registry.SchemeKEAnnex1, "KE-12345 is a valid Annex 1 KE number"},
		{"2009-2-50", true, registry.SchemeKEAnnex2, "2009-2-50 is a valid Annex 2 KE number"},
		{"2022-1-1290", true, registry.SchemeKEAnnex2, "2022-1-1290 is a valid Annex 2 KE number"},
		// eight characters satisfy the Annex 1 rule first
		{"2017-2-1", true, registry.SchemeKEAnnex1, "2017-2-1 is a valid Annex 1 KE number"},
		{"1990-1-1", true, registry.SchemeKEAnnex1, "1990-1-1 is a valid Annex 1 KE number"},
		{"1990-1-12", false, registry.SchemeUnknown, "1990-1-12 is not a valid KE number for Annex 1 or Annex 2"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.CheckChecksumKE(tt.input, asOf)
			if got.Success != tt.success || got.Scheme != tt.scheme || got.Message != tt.message {
				t.Errorf("CheckChecksumKE(%q) = %v, want success=%v scheme=%v message=%q",
					tt.input, got, tt.success, tt.scheme, tt.message)
			}
		})
	}
}
