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
	stderrors "errors"
	"strings"
	"testing"

	"dirpx.dev/chemid/chemcore/errors"
	"dirpx.dev/chemid/chemcore/model/registry"
)

func TestCandidateFromValue(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    string
		wantErr bool
	}{
		{"string", "7732-18-5", "7732-18-5", false},
		{"empty string", "", "", false},
		{"nil", nil, "", true},
		{"int", 7732185, "", true},
		{"float", 3.14, "", true},
		{"bool", true, "", true},
		{"slice", []any{"7732-18-5"}, "", true},
		{"map", map[string]any{"id": "7732-18-5"}, "", true},
		{"byte slice", []byte("7732-18-5"), "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.CandidateFromValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CandidateFromValue(%v) error = %v, wantErr %v", tt.value, err, tt.wantErr)
			}
			if tt.wantErr {
				var argErr *errors.ArgumentError
				if !stderrors.As(err, &argErr) {
					t.Fatalf("error = %T, want *errors.ArgumentError", err)
				}
				if argErr.Func != "registry.CandidateFromValue" {
					t.Errorf("Func = %q", argErr.Func)
				}
				if !stderrors.Is(err, errors.ErrInvalidArgument) {
					t.Error("error does not match ErrInvalidArgument")
				}
				return
			}
			if got != tt.want {
				t.Errorf("CandidateFromValue() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCandidatesFromValue(t *testing.T) {
	tests := []struct {
		name       string
		value      any
		want       []string
		wantErr    bool
		wantReason []string
	}{
		{name: "string slice", value: []string{"a", "b"}, want: []string{"a", "b"}},
		{name: "any slice", value: []any{"KE-12345", "hello"}, want: []string{"KE-12345", "hello"}},
		{name: "empty any slice", value: []any{}, want: []string{}},
		{
			name:       "mixed",
			value:      []any{"7732-18-5", 42, "x", nil},
			wantErr:    true,
			wantReason: []string{"v[1] (int)", "v[3] (nil)"},
		},
		{name: "nil", value: nil, wantErr: true, wantReason: []string{"got nil"}},
		{name: "single string", value: "7732-18-5", wantErr: true, wantReason: []string{"got string"}},
		{name: "map", value: map[string]any{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.CandidatesFromValue(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CandidatesFromValue() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if got != nil {
					t.Errorf("CandidatesFromValue() = %v, want nil on error", got)
				}
				if !stderrors.Is(err, errors.ErrInvalidArgument) {
					t.Errorf("error = %v, want ErrInvalidArgument", err)
				}
				for _, r := range tt.wantReason {
					if !strings.Contains(err.Error(), r) {
						t.Errorf("error = %q, want it to mention %q", err.Error(), r)
					}
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestIdentifyValue(t *testing.T) {
	res, err := registry.IdentifyValue("7732-18-5", asOf2024)
	if err != nil || !res.Success {
		t.Errorf("IdentifyValue(string) = %v, %v", res, err)
	}

	res, err = registry.IdentifyValue(7732185, asOf2024)
	if !stderrors.Is(err, errors.ErrInvalidArgument) {
		t.Errorf("IdentifyValue(int) error = %v, want ErrInvalidArgument", err)
	}
	if !res.IsZero() {
		t.Errorf("IdentifyValue(int) = %v, want zero Result", res)
	}
}

func TestIdentifyValues(t *testing.T) {
	got, err := registry.IdentifyValues([]any{"KE-12345", "hello", "7732-18-5"}, asOf2024)
	if err != nil {
		t.Fatalf("IdentifyValues() error = %v", err)
	}
	if len(got) != 3 || !got[0].Success || got[1].Success || !got[2].Success {
		t.Errorf("IdentifyValues() = %v", got)
	}

	got, err = registry.IdentifyValues([]any{"KE-12345", 1}, asOf2024)
	if err == nil || got != nil {
		t.Errorf("IdentifyValues(mixed) = %v, %v; want nil, error", got, err)
	}
}
