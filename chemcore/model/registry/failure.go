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
	"bytes"
	"encoding/json"

	"dirpx.dev/chemid/chemcore/errors"
	"dirpx.dev/chemid/chemcore/model"
	"gopkg.in/yaml.v3"
)

// Failure classifies why a combined check did not succeed.
//
// A combined check has exactly three terminal states: the shape did not match
// (FailureFormat), the shape matched but the checksum did not
// (FailureInvalid), or both passed (FailureNone). FailureInvalid is the
// "close match" signal the dispatcher prefers over a plain no-match.
type Failure int

const (
	// FailureNone means the check succeeded. It encodes as JSON null and
	// YAML null.
	FailureNone Failure = iota

	// FailureFormat means the candidate does not have the scheme's shape.
	FailureFormat

	// FailureInvalid means the candidate has the scheme's shape but its
	// checksum is wrong.
	FailureInvalid
)

// String constants for Failure values.
const (
	FailureNoneStr    = "none"
	FailureFormatStr  = "format"
	FailureInvalidStr = "invalid"
)

// ParseFailure converts "none", "format" or "invalid" into a Failure.
// Any other input returns a *errors.ParseError.
func ParseFailure(s string) (Failure, error) {
	switch s {
	case FailureNoneStr:
		return FailureNone, nil
	case FailureFormatStr:
		return FailureFormat, nil
	case FailureInvalidStr:
		return FailureInvalid, nil
	default:
		return FailureNone, &errors.ParseError{Type: "Failure", Value: s}
	}
}

// String returns the canonical token, or "unknown" for out-of-range values.
func (f Failure) String() string {
	switch f {
	case FailureNone:
		return FailureNoneStr
	case FailureFormat:
		return FailureFormatStr
	case FailureInvalid:
		return FailureInvalidStr
	default:
		return "unknown"
	}
}

// Valid reports whether f is one of the defined constants.
func (f Failure) Valid() bool {
	return f == FailureNone || f == FailureFormat || f == FailureInvalid
}

// TypeName returns "Failure".
func (f Failure) TypeName() string {
	return "Failure"
}

// Redacted returns the same string as String.
func (f Failure) Redacted() string {
	return f.String()
}

// IsZero reports whether f is FailureNone. FailureNone is a valid value.
func (f Failure) IsZero() bool {
	return f == FailureNone
}

// Equal reports whether f and other are the same failure kind.
func (f Failure) Equal(other Failure) bool {
	return f == other
}

// Validate returns a *errors.ValidationError when f is out of range.
func (f Failure) Validate() error {
	if !f.Valid() {
		return &errors.ValidationError{
			Type:   "Failure",
			Reason: "invalid Failure value",
			Value:  int(f),
		}
	}
	return nil
}

// MarshalJSON encodes FailureNone as null and the others as their token.
func (f Failure) MarshalJSON() ([]byte, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Failure", Value: int(f)}
	}
	if f == FailureNone {
		return []byte("null"), nil
	}
	return []byte(`"` + f.String() + `"`), nil
}

// UnmarshalJSON accepts null (FailureNone) or a token understood by
// ParseFailure.
func (f *Failure) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return &errors.UnmarshalError{Type: "Failure", Data: data, Reason: "empty data"}
	}
	if bytes.Equal(data, []byte("null")) {
		*f = FailureNone
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return &errors.UnmarshalError{Type: "Failure", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseFailure(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// MarshalYAML encodes FailureNone as null and the others as their token.
func (f Failure) MarshalYAML() (any, error) {
	if !f.Valid() {
		return nil, &errors.MarshalError{Type: "Failure", Value: int(f)}
	}
	if f == FailureNone {
		return nil, nil
	}
	return f.String(), nil
}

// UnmarshalYAML accepts a null node (FailureNone) or a token understood by
// ParseFailure.
func (f *Failure) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		*f = FailureNone
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return &errors.UnmarshalError{Type: "Failure", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseFailure(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

var _ model.Model = (*Failure)(nil)
