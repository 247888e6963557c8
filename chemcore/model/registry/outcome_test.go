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
	"encoding/json"
	"strings"
	"testing"

	"dirpx.dev/chemid/chemcore/model/registry"
	"gopkg.in/yaml.v3"
)

func TestOutcome_JSON(t *testing.T) {
	tests := []struct {
		name    string
		outcome registry.Outcome
		want    string
	}{
		{
			name:    "with_scheme",
			outcome: registry.CheckChecksumCAS("7732-18-5"),
			want:    `{"success":true,"message":"7732-18-5 is a valid CAS number","originalInput":"7732-18-5","scheme":"cas"}`,
		},
		{
			name:    "without_scheme",
			outcome: registry.CheckFormatKE("hello"),
			want:    `{"success":false,"message":"hello did not match either Annex numbers","originalInput":"hello"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.outcome)
			if err != nil {
				t.Fatalf("Marshal() error = %v", err)
			}
			if string(data) != tt.want {
				t.Errorf("Marshal() = %s, want %s", data, tt.want)
			}

			var got registry.Outcome
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if !got.Equal(tt.outcome) {
				t.Errorf("round trip = %v, want %v", got, tt.outcome)
			}
		})
	}
}

func TestOutcome_YAML(t *testing.T) {
	in := registry.CheckFormatEC("200-003-9")
	data, err := yaml.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "scheme: ec") {
		t.Errorf("Marshal() = %q, want scheme: ec", data)
	}

	var out registry.Outcome
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !out.Equal(in) {
		t.Errorf("round trip = %v, want %v", out, in)
	}
}

func TestOutcome_Validate(t *testing.T) {
	tests := []struct {
		name    string
		outcome registry.Outcome
		wantErr bool
	}{
		{"valid", registry.Outcome{Message: "m", Input: "x"}, false},
		{"empty_message", registry.Outcome{Input: "x"}, true},
		{"bad_scheme", registry.Outcome{Message: "m", Scheme: registry.Scheme(99)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.outcome.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	if _, err := json.Marshal(registry.Outcome{}); err == nil {
		t.Error("Marshal(zero Outcome) error = nil, want error")
	}
	var o registry.Outcome
	if err := json.Unmarshal([]byte(`{"success":true,"message":""}`), &o); err == nil {
		t.Error("Unmarshal(empty message) error = nil, want error")
	}
}

func TestOutcome_Redacted(t *testing.T) {
	long := strings.Repeat("9", 40)
	o := registry.CheckFormatCAS(long)

	red := o.Redacted()
	if strings.Contains(red, long) {
		t.Errorf("Redacted() = %q, leaks full input", red)
	}
	if !strings.Contains(red, strings.Repeat("9", 24)+"...") {
		t.Errorf("Redacted() = %q, want truncated input", red)
	}
	if !strings.Contains(o.String(), long) {
		t.Errorf("String() = %q, want full input", o.String())
	}
	if o.IsZero() || !(registry.Outcome{}).IsZero() {
		t.Error("IsZero() mismatch")
	}
}
