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

var asOf2024 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestIdentifyOne(t *testing.T) {
	tests := []struct {
		input   string
		scheme  registry.Scheme
		failure registry.Failure
		message string
	}{
		{"7732-18-5", registry.SchemeCAS, registry.FailureNone, "7732-18-5 is formatted correctly and is valid"},
		{"200-003-9", registry.SchemeEC, registry.FailureNone, "200-003-9 is formatted correctly and is valid"},
		{"KE-12345", registry.SchemeKEAnnex1, registry.FailureNone, "KE-12345 is formatted correctly and is valid"},
		{"2017-2-13", registry.SchemeKEAnnex2, registry.FailureNone, "2017-2-13 is formatted correctly and is valid"},
		{"2009-2-50", registry.SchemeKEAnnex2, registry.FailureNone, "2009-2-50 is formatted correctly and is valid"},
		{"2022-1-1290", registry.SchemeKEAnnex2, registry.FailureNone, "2022-1-1290 is formatted correctly and is valid"},

		// close matches
		{"123-45-6", registry.SchemeCAS, registry.FailureInvalid, "123-45-6 is not a valid CAS number"},
		{"123-456-7", registry.SchemeEC, registry.FailureInvalid, "123-456-7 is not a valid EC number"},
		{"1990-1-1", registry.SchemeKEAnnex2, registry.FailureInvalid, "1990-1-1 is not a valid Annex 2 KE number"},

		// no match
		{"123-45-67", registry.SchemeUnknown, registry.FailureFormat, registry.NoMatchMessage},
		{"hello", registry.SchemeUnknown, registry.FailureFormat, registry.NoMatchMessage},
		{"", registry.SchemeUnknown, registry.FailureFormat, registry.NoMatchMessage},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := registry.IdentifyOne(tt.input, asOf2024)
			if got.Scheme != tt.scheme {
				t.Errorf("Scheme = %v, want %v", got.Scheme, tt.scheme)
			}
			if got.Failure != tt.failure {
				t.Errorf("Failure = %v, want %v", got.Failure, tt.failure)
			}
			if got.Message != tt.message {
				t.Errorf("Message = %q, want %q", got.Message, tt.message)
			}
			if got.Success != (tt.failure == registry.FailureNone) {
				t.Errorf("Success = %v", got.Success)
			}
			if got.Input != tt.input {
				t.Errorf("Input = %q, want %q", got.Input, tt.input)
			}
		})
	}
}

func TestIdentifyOne_NoMatchShape(t *testing.T) {
	got := registry.IdentifyOne("hello", asOf2024)
	want := registry.Result{
		Message: "No Chemical Identifiers were matched",
		Input:   "hello",
		Failure: registry.FailureFormat,
	}
	if !got.Equal(want) {
		t.Errorf("IdentifyOne(hello) = %v, want %v", got, want)
	}
	if got.NumberFormat != "" || got.Scheme.Label() != "" {
		t.Errorf("no-match result carries a type: %v", got)
	}
}

func TestIdentifyOne_ReferenceDate(t *testing.T) {
	early := time.Date(2021, 12, 31, 0, 0, 0, 0, time.UTC)
	late := time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

	if res := registry.IdentifyOne("2022-1-1290", early); res.Success || !res.CloseMatch() {
		t.Errorf("IdentifyOne before 2022 = %v, want close match", res)
	}
	if res := registry.IdentifyOne("2022-1-1290", late); !res.Success {
		t.Errorf("IdentifyOne in 2022 = %v, want success", res)
	}
}

func TestIdentifyMany(t *testing.T) {
	got := registry.IdentifyMany([]string{"KE-12345", "hello", "7732-18-5"}, asOf2024)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if !got[0].Success || got[0].Scheme != registry.SchemeKEAnnex1 {
		t.Errorf("[0] = %v, want KE Annex 1 success", got[0])
	}
	if got[1].Success || got[1].Message != registry.NoMatchMessage {
		t.Errorf("[1] = %v, want no-match", got[1])
	}
	if !got[2].Success || got[2].Scheme != registry.SchemeCAS {
		t.Errorf("[2] = %v, want CAS success", got[2])
	}

	for _, in := range [][]string{nil, {}} {
		res := registry.IdentifyMany(in, asOf2024)
		if res == nil || len(res) != 0 {
			t.Errorf("IdentifyMany(%#v) = %#v, want empty non-nil slice", in, res)
		}
	}
}

func TestIdentifier_RestrictedSchemes(t *testing.T) {
	tests := []struct {
		name    string
		schemes []registry.Scheme
		input   string
		scheme  registry.Scheme
		failure registry.Failure
	}{
		{"cas only accepts cas", []registry.Scheme{registry.SchemeCAS}, "7732-18-5", registry.SchemeCAS, registry.FailureNone},
		{"ec only rejects cas", []registry.Scheme{registry.SchemeEC}, "7732-18-5", registry.SchemeUnknown, registry.FailureFormat},
		{"close match still reported", []registry.Scheme{registry.SchemeEC, registry.SchemeCAS}, "123-45-6", registry.SchemeCAS, registry.FailureInvalid},
		{"unknown scheme ignored", []registry.Scheme{registry.SchemeUnknown}, "7732-18-5", registry.SchemeUnknown, registry.FailureFormat},
		{"all by default", nil, "KE-12345", registry.SchemeKEAnnex1, registry.FailureNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := registry.NewIdentifier(asOf2024, tt.schemes...).Identify(tt.input)
			if got.Scheme != tt.scheme || got.Failure != tt.failure {
				t.Errorf("Identify(%q) = %v, want scheme=%v failure=%v", tt.input, got, tt.scheme, tt.failure)
			}
		})
	}
}

func TestNewIdentifier_Schemes(t *testing.T) {
	id := registry.NewIdentifier(asOf2024,
		registry.SchemeKEAnnex2, registry.SchemeCAS, registry.SchemeKEAnnex2, registry.Scheme(42))

	got := id.Schemes()
	if len(got) != 2 || got[0] != registry.SchemeKEAnnex2 || got[1] != registry.SchemeCAS {
		t.Errorf("Schemes() = %v, want [ke-annex-2 cas]", got)
	}
	if !id.AsOf().Equal(asOf2024) {
		t.Errorf("AsOf() = %v, want %v", id.AsOf(), asOf2024)
	}
	if len(registry.NewIdentifier(asOf2024).Schemes()) != len(registry.Schemes()) {
		t.Error("NewIdentifier() without schemes does not try every scheme")
	}
}

func TestIdentifier_ConcurrentUse(t *testing.T) {
	id := registry.NewIdentifier(asOf2024)
	done := make(chan registry.Result)
	for i := 0; i < 8; i++ {
		go func() { done <- id.Identify("7732-18-5") }()
	}
	for i := 0; i < 8; i++ {
		if res := <-done; !res.Success {
			t.Errorf("Identify() = %v, want success", res)
		}
	}
}
