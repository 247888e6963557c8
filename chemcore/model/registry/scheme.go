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
	"strings"
	"time"

	"dirpx.dev/chemid/chemcore/errors"
	"dirpx.dev/chemid/chemcore/model"
	"gopkg.in/yaml.v3"
)

// Scheme identifies one of the chemical registry numbering schemes chemid
// understands.
//
// Each known Scheme carries its own format checker and checksum validator
// (see Format, Checksum and Check), so iterating Schemes() and calling Check
// is all the dispatcher needs to do. The declared order of the constants is
// the dispatch order and doubles as the tie-break when more than one scheme
// could claim an input.
type Scheme int

const (
	// SchemeUnknown is the zero value. It marks results that matched no
	// scheme at all, such as the dispatcher's no-match fallback.
	SchemeUnknown Scheme = iota

	// SchemeCAS is the Chemical Abstracts Service Registry Number,
	// 2-7 digits, 2 digits and a mod-10 check digit (7732-18-5).
	SchemeCAS

	// SchemeEC is the European Community number, 3+3 digits and a mod-11
	// check digit (200-003-9).
	SchemeEC

	// SchemeKEAnnex1 is the Kenyan Annex 1 code: "KE-" and five digits
	// (KE-12345).
	SchemeKEAnnex1

	// SchemeKEAnnex2 is the Kenyan Annex 2 code: a four-digit year of
	// introduction, one digit and up to four sequence digits (2022-1-1290).
	SchemeKEAnnex2
)

// String constants for Scheme values used in serialization, parsing, and
// command-line flags.
const (
	SchemeUnknownStr  = "unknown"
	SchemeCASStr      = "cas"
	SchemeECStr       = "ec"
	SchemeKEAnnex1Str = "ke-annex-1"
	SchemeKEAnnex2Str = "ke-annex-2"
)

// schemeInfo is the per-variant descriptive data.
type schemeInfo struct {
	label        string
	title        string
	numberFormat string
	example      string
}

var schemeInfos = map[Scheme]schemeInfo{
	SchemeCAS:      {"CAS Number", "CAS Registry Number", "XX-YY-Z - XXXXXXX-YY-Z", "7732-18-5"},
	SchemeEC:       {"EC Number", "EC European Community Number", "XXX-YYY-Z", "200-003-9"},
	SchemeKEAnnex1: {"KE Annex 1", "KE Annex 1", "KE-XXXXX", "KE-12345"},
	SchemeKEAnnex2: {"KE Annex 2", "KE Annex 2", "YYYY-X-ZZZZ", "2022-1-1290"},
}

// Schemes returns every known scheme in dispatch order: CAS, EC, KE Annex 1,
// KE Annex 2. The returned slice is freshly allocated on every call.
func Schemes() []Scheme {
	return []Scheme{SchemeCAS, SchemeEC, SchemeKEAnnex1, SchemeKEAnnex2}
}

// ParseScheme converts a textual representation into a Scheme.
//
// Matching is case-insensitive and accepts the canonical token, the label
// used in results and the long title:
//
//	"cas", "CAS Number", "CAS Registry Number"           -> SchemeCAS
//	"ec", "EC Number", "EC European Community Number"    -> SchemeEC
//	"ke-annex-1", "ke1", "KE Annex 1"                    -> SchemeKEAnnex1
//	"ke-annex-2", "ke2", "KE Annex 2"                    -> SchemeKEAnnex2
//	"unknown"                                            -> SchemeUnknown
//
// Any other input returns a *errors.ParseError.
func ParseScheme(s string) (Scheme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case SchemeUnknownStr:
		return SchemeUnknown, nil
	case SchemeCASStr, "cas number", "cas registry number":
		return SchemeCAS, nil
	case SchemeECStr, "ec number", "ec european community number":
		return SchemeEC, nil
	case SchemeKEAnnex1Str, "ke1", "ke annex 1":
		return SchemeKEAnnex1, nil
	case SchemeKEAnnex2Str, "ke2", "ke annex 2":
		return SchemeKEAnnex2, nil
	default:
		return SchemeUnknown, &errors.ParseError{Type: "Scheme", Value: s}
	}
}

// String returns the canonical token of the scheme.
//
// The token is lowercase and is what chemid writes to JSON, YAML, TOML
// configuration and command-line flags. The mapping is:
//
//	SchemeUnknown  -> "unknown"
//	SchemeCAS      -> "cas"
//	SchemeEC       -> "ec"
//	SchemeKEAnnex1 -> "ke-annex-1"
//	SchemeKEAnnex2 -> "ke-annex-2"
//
// Values outside the defined constants return "invalid". Callers that must
// only emit well-formed tokens SHOULD check Valid first.
func (s Scheme) String() string {
	switch s {
	case SchemeUnknown:
		return SchemeUnknownStr
	case SchemeCAS:
		return SchemeCASStr
	case SchemeEC:
		return SchemeECStr
	case SchemeKEAnnex1:
		return SchemeKEAnnex1Str
	case SchemeKEAnnex2:
		return SchemeKEAnnex2Str
	default:
		return "invalid"
	}
}

// Label returns the short display name used as the "type" of a Result, for
// example "CAS Number".
//
// Labels are part of the result payload consumers match on, so they MUST NOT
// change between releases. Label is empty for SchemeUnknown and for
// out-of-range values; an unmatched Result therefore has no type.
func (s Scheme) Label() string {
	return schemeInfos[s].label
}

// Title returns the long registry name, for example "CAS Registry Number".
func (s Scheme) Title() string {
	return schemeInfos[s].title
}

// NumberFormat returns the human-readable shape description, for example
// "XXX-YYY-Z".
func (s Scheme) NumberFormat() string {
	return schemeInfos[s].numberFormat
}

// Example returns a sample identifier that passes both stages of the
// scheme. KE Annex 2's example is valid for any reference date from 2022 on.
func (s Scheme) Example() string {
	return schemeInfos[s].example
}

// Valid reports whether s is one of the defined constants, including
// SchemeUnknown.
//
// Values produced by numeric casts or untrusted input SHOULD be checked with
// Valid before use. Valid is the range check behind Validate and the
// marshalers; use Known to ask whether s names a real registry.
func (s Scheme) Valid() bool {
	return s >= SchemeUnknown && s <= SchemeKEAnnex2
}

// Known reports whether s names an actual numbering scheme, that is
// whether it is valid and not SchemeUnknown. Only known schemes take part in
// dispatch.
func (s Scheme) Known() bool {
	return s > SchemeUnknown && s <= SchemeKEAnnex2
}

// Format runs the scheme's format checker on input and returns its Outcome.
//
// It dispatches to CheckFormatCAS, CheckFormatEC, CheckFormatKEAnnex1 or
// CheckFormatKEAnnex2. Only the shape is inspected; use Check for the full
// verdict. For SchemeUnknown, or an invalid value, the Outcome is always
// negative and its Scheme is SchemeUnknown.
func (s Scheme) Format(input string) Outcome {
	switch s {
	case SchemeCAS:
		return CheckFormatCAS(input)
	case SchemeEC:
		return CheckFormatEC(input)
	case SchemeKEAnnex1:
		return CheckFormatKEAnnex1(input)
	case SchemeKEAnnex2:
		return CheckFormatKEAnnex2(input)
	default:
		return Outcome{Message: input + " does not belong to a known scheme", Input: input}
	}
}

// Checksum runs the scheme's checksum validator on input and returns its
// Outcome.
//
// The validator assumes input already passed Format and does not re-check
// the shape, although malformed input still yields a negative Outcome
// rather than an error. asOf is only consulted by SchemeKEAnnex2; the other
// schemes ignore it, so passing the zero time.Time is fine for them.
func (s Scheme) Checksum(input string, asOf time.Time) Outcome {
	switch s {
	case SchemeCAS:
		return CheckChecksumCAS(input)
	case SchemeEC:
		return CheckChecksumEC(input)
	case SchemeKEAnnex1:
		return CheckChecksumKEAnnex1(input)
	case SchemeKEAnnex2:
		return CheckChecksumKEAnnex2(input, asOf)
	default:
		return Outcome{Message: input + " does not belong to a known scheme", Input: input}
	}
}

// Check runs the scheme's format checker followed, on success, by its
// checksum validator, and folds both into a Result.
//
// The Result is in one of three states: Success with FailureNone,
// FailureFormat when the shape did not match, or FailureInvalid when the
// shape matched but the checksum did not. For SchemeUnknown, or an invalid
// value, Check returns the dispatcher's no-match Result.
//
// Check is equivalent to calling CheckCAS, CheckEC, CheckKEAnnex1 or
// CheckKEAnnex2 directly and is what Identifier uses for each scheme it
// tries.
func (s Scheme) Check(input string, asOf time.Time) Result {
	if !s.Known() {
		return noMatch(input)
	}
	return combine(s, input, asOf)
}

// TypeName returns "Scheme", the name of the type for logging and error
// messages. This method implements part of the model.Model interface.
func (s Scheme) TypeName() string {
	return "Scheme"
}

// Redacted returns the same string as String; schemes carry no sensitive data.
func (s Scheme) Redacted() string {
	return s.String()
}

// IsZero reports whether s is SchemeUnknown.
//
// SchemeUnknown is a valid Scheme, so IsZero returning true does not
// indicate an error. It marks a Result that matched no scheme.
func (s Scheme) IsZero() bool {
	return s == SchemeUnknown
}

// Equal reports whether s and other are the same scheme.
func (s Scheme) Equal(other Scheme) bool {
	return s == other
}

// Validate returns nil for every defined constant, SchemeUnknown included,
// and a *errors.ValidationError for out-of-range values.
//
// This method implements part of the model.Model interface and is called by
// Result.Validate.
func (s Scheme) Validate() error {
	if !s.Valid() {
		return &errors.ValidationError{
			Type:   "Scheme",
			Reason: "invalid Scheme value",
			Value:  int(s),
		}
	}
	return nil
}

// MarshalJSON encodes the scheme as its canonical token, for example "cas".
//
// Out-of-range values return a *errors.MarshalError instead of producing
// output, so a corrupted Scheme never silently reaches a payload.
func (s Scheme) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Scheme", Value: int(s)}
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON accepts a JSON string in any spelling understood by
// ParseScheme. Non-string JSON yields a *errors.UnmarshalError; an unknown
// string yields the *errors.ParseError from ParseScheme.
func (s *Scheme) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return &errors.UnmarshalError{Type: "Scheme", Data: data, Reason: err.Error()}
	}
	parsed, err := ParseScheme(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalYAML encodes the scheme as its canonical token.
func (s Scheme) MarshalYAML() (any, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Scheme", Value: int(s)}
	}
	return s.String(), nil
}

// UnmarshalYAML accepts any spelling understood by ParseScheme.
func (s *Scheme) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err != nil {
		return &errors.UnmarshalError{Type: "Scheme", Data: []byte(node.Value), Reason: err.Error()}
	}
	parsed, err := ParseScheme(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler, which lets cobra flags and
// TOML configuration carry schemes.
func (s Scheme) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, &errors.MarshalError{Type: "Scheme", Value: int(s)}
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseScheme.
func (s *Scheme) UnmarshalText(text []byte) error {
	parsed, err := ParseScheme(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var _ model.Model = (*Scheme)(nil)
