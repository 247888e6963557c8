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

// redactedInputLen bounds how much of a candidate the Redacted forms show.
const redactedInputLen = 24

// Outcome is the result of a single-stage check: a format check or a
// checksum check, but not both.
//
// Success reports only that stage. A successful format Outcome says nothing
// about the checksum and vice versa; use Result (from Check or IdentifyOne)
// for the combined verdict.
//
// Scheme is the scheme that was checked. For the combined KE checks
// (CheckFormatKE, CheckChecksumKE) it is the annex that matched, or
// SchemeUnknown when neither did.
type Outcome struct {
	// Success reports whether the stage passed.
	Success bool `json:"success" yaml:"success"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message" yaml:"message"`

	// Input is the candidate exactly as it was passed in.
	Input string `json:"originalInput" yaml:"originalInput"`

	// Scheme is the scheme the stage belongs to.
	Scheme Scheme `json:"scheme,omitempty" yaml:"scheme,omitempty"`
}

// String returns a full representation including the complete input.
func (o Outcome) String() string {
	return fmt.Sprintf("Outcome{Scheme:%s, Success:%t, Input:%q, Message:%q}",
		o.Scheme, o.Success, o.Input, o.Message)
}

// Redacted returns a representation with the input truncated and the
// message omitted.
func (o Outcome) Redacted() string {
	return "Outcome{Scheme:" + o.Scheme.String() +
		", Success:" + strconv.FormatBool(o.Success) +
		", Input:" + strconv.Quote(truncate(o.Input, redactedInputLen)) + "}"
}

// TypeName returns "Outcome".
func (o Outcome) TypeName() string {
	return "Outcome"
}

// IsZero reports whether every field holds its zero value.
func (o Outcome) IsZero() bool {
	return o == Outcome{}
}

// Equal reports whether o and other have identical fields.
func (o Outcome) Equal(other Outcome) bool {
	return o == other
}

// Validate checks that the outcome carries a message and a valid scheme.
func (o Outcome) Validate() error {
	if o.Message == "" {
		return &errors.ValidationError{Type: "Outcome", Field: "Message", Reason: "must not be empty"}
	}
	if err := o.Scheme.Validate(); err != nil {
		return &errors.ValidationError{Type: "Outcome", Field: "Scheme", Reason: err.Error(), Value: int(o.Scheme)}
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Outcome) MarshalJSON() ([]byte, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", o.TypeName(), err)
	}
	type alias Outcome
	return json.Marshal((alias)(o))
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	type alias Outcome
	if err := json.Unmarshal(data, (*alias)(o)); err != nil {
		return &errors.UnmarshalError{Type: "Outcome", Data: data, Reason: err.Error()}
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Outcome is invalid: %w", err)
	}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Outcome) MarshalYAML() (any, error) {
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", o.TypeName(), err)
	}
	type alias Outcome
	return (alias)(o), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (o *Outcome) UnmarshalYAML(node *yaml.Node) error {
	type alias Outcome
	if err := node.Decode((*alias)(o)); err != nil {
		return &errors.UnmarshalError{Type: "Outcome", Reason: err.Error()}
	}
	if err := o.Validate(); err != nil {
		return fmt.Errorf("unmarshaled Outcome is invalid: %w", err)
	}
	return nil
}

// truncate shortens s to at most n runes, marking the cut with "...".
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}

var _ model.Model = (*Outcome)(nil)
