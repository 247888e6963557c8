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

package registry

import (
	"encoding/json"
	"fmt"
	"strconv"

	"dirpx.dev/chemid/chemcore/errors"
	"dirpx.dev/chemid/chemcore/model"
	"gopkg.in/yaml.v3"
)

// Result is the verdict of a combined format+checksum check, and the value
// returned by the dispatcher.
//
// The fields obey these invariants, which Validate enforces:
//
//   - Success implies Formatted, Valid and Failure == FailureNone.
//   - Failure == FailureNone implies Success.
//   - Failure == FailureFormat implies !Formatted and !Valid.
//   - Failure == FailureInvalid implies Formatted and !Valid.
//   - Scheme == SchemeUnknown implies !Success.
//
// On the wire a Result keeps the field names of the established JSON shape:
//
//	{
//	  "success": true,
//	  "message": "7732-18-5 is formatted correctly and is valid",
//	  "originalInput": "7732-18-5",
//	  "type": "CAS Number",
//	  "numberFormat": "XX-YY-Z - XXXXXXX-YY-Z",
//	  "error": null,
//	  "formatted": true,
//	  "valid": true
//	}
//
// "type" carries Scheme.Label() and is omitted, together with
// "numberFormat", for the dispatcher's no-match fallback.
type Result struct {
	// Success is true only when both format and checksum passed.
	Success bool

	// Message is a human-readable description of the verdict.
	Message string

	// Input is the candidate exactly as it was passed in.
	Input string

	// Scheme is the scheme that produced the verdict.
	Scheme Scheme

	// NumberFormat is the scheme's shape description.
	NumberFormat string

	// Failure is the reason the check did not succeed.
	Failure Failure

	// Formatted reports whether the candidate matched the scheme's shape.
	Formatted bool

	// Valid reports whether the checksum passed.
	Valid bool
}

// resultWire is the serialized shape of Result.
type resultWire struct {
	Success      bool    `json:"success" yaml:"success"`
	Message      string  `json:"message" yaml:"message"`
	Input        string  `json:"originalInput" yaml:"originalInput"`
	Type         string  `json:"type,omitempty" yaml:"type,omitempty"`
	NumberFormat string  `json:"numberFormat,omitempty" yaml:"numberFormat,omitempty"`
	Error        Failure `json:"error" yaml:"error"`
	Formatted    bool    `json:"formatted" yaml:"formatted"`
	Valid        bool    `json:"valid" yaml:"valid"`
}

func (r Result) wire() resultWire {
	return resultWire{
		Success:      r.Success,
		Message:      r.Message,
		Input:        r.Input,
		Type:         r.Scheme.Label(),
		NumberFormat: r.NumberFormat,
		Error:        r.Failure,
		Formatted:    r.Formatted,
		Valid:        r.Valid,
	}
}

func (w resultWire) result() (Result, error) {
	scheme := SchemeUnknown
	if w.Type != "" {
		parsed, err := ParseScheme(w.Type)
		if err != nil {
			return Result{}, err
		}
		scheme = parsed
	}
	return Result{
		Success:      w.Success,
		Message:      w.Message,
		Input:        w.Input,
		Scheme:       scheme,
		NumberFormat: w.NumberFormat,
		Failure:      w.Error,
		Formatted:    w.Formatted,
		Valid:        w.Valid,
	}, nil
}

// String returns a full representation including the complete input.
func (r Result) String() string {
	return fmt.Sprintf("Result{Scheme:%s, Success:%t, Failure:%s, Input:%q, Message:%q}",
		r.Scheme, r.Success, r.Failure, r.Input, r.Message)
}

// Redacted returns a representation with the input truncated and the
// message omitted.
func (r Result) Redacted() string {
	return "Result{Scheme:" + r.Scheme.String() +
		", Success:" + strconv.FormatBool(r.Success) +
		", Failure:" + r.Failure.String() +
		", Input:" + strconv.Quote(truncate(r.Input, redactedInputLen)) + "}"
}

// TypeName returns "Result".
func (r Result) TypeName() string {
	return "Result"
}

// IsZero reports whether every field holds its zero value.
func (r Result) IsZero() bool {
	return r == Result{}
}

// Equal reports whether r and other have identical fields.
func (r Result) Equal(other Result) bool {
	return r == other
}

// CloseMatch reports whether the candidate had the scheme's shape but failed
// its checksum.
func (r Result) CloseMatch() bool {
	return r.Failure == FailureInvalid
}

// Validate checks the invariants listed on Result.
func (r Result) Validate() error {
	if r.Message == "" {
		return &errors.ValidationError{Type: "Result", Field: "Message", Reason: "must not be empty"}
	}
	if err := r.Scheme.Validate(); err != nil {
		return &errors.ValidationError{Type: "Result", Field: "Scheme", Reason: err.Error(), Value: int(r.Scheme)}
	}
	if err := r.Failure.Validate(); err != nil {
		return &errors.ValidationError{Type: "Result", Field: "Failure", Reason: err.Error(), Value: int(r.Failure)}
	}

	switch r.Failure {
	case FailureNone:
		if !r.Success {
			return &errors.ValidationError{Type: "Result", Field: "Success", Reason: "must be true when Failure is none"}
		}
		if !r.Formatted || !r.Valid {
			return &errors.ValidationError{Type: "Result", Field: "Valid", Reason: "Formatted and Valid must be true when Success is true"}
		}
		if !r.Scheme.Known() {
			return &errors.ValidationError{Type: "Result", Field: "Scheme", Reason: "must name a scheme when Success is true"}
		}
	case FailureFormat:
		if r.Success || r.Formatted || r.Valid {
			return &errors.ValidationError{Type: "Result", Field: "Formatted", Reason: "Success, Formatted and Valid must be false on a format failure"}
		}
	case FailureInvalid:
		if r.Success || !r.Formatted || r.Valid {
			return &errors.ValidationError{Type: "Result", Field: "Valid", Reason: "only Formatted may be true on a checksum failure"}
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Result) MarshalJSON() ([]byte, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	return json.Marshal(r.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Result) UnmarshalJSON(data []byte) error {
	var w resultWire
	if err := json.Unmarshal(data, &w); err != nil {
		return &errors.UnmarshalError{Type: "Result", Data: data, Reason: err.Error()}
	}
	parsed, err := w.result()
	if err != nil {
		return &errors.UnmarshalError{Type: "Result", Data: data, Reason: err.Error()}
	}
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Result is invalid: %w", err)
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Result) MarshalYAML() (any, error) {
	if err := r.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", r.TypeName(), err)
	}
	return r.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Result) UnmarshalYAML(node *yaml.Node) error {
	var w resultWire
	if err := node.Decode(&w); err != nil {
		return &errors.UnmarshalError{Type: "Result", Reason: err.Error()}
	}
	parsed, err := w.result()
	if err != nil {
		return &errors.UnmarshalError{Type: "Result", Reason: err.Error()}
	}
	if err := parsed.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Result is invalid: %w", err)
	}
	*r = parsed
	return nil
}

var _ model.Model = (*Result)(nil)
