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

// Package model defines the contracts shared by chemid value types.
//
// Every type that leaves the registry package as data (schemes, failure
// kinds, single-stage outcomes and combined validation results) implements
// Model. The contract gives each of them the same baseline: self-validation
// of invariants, round-trip JSON and YAML encoding, a log-safe string form,
// a canonical type name and zero-value detection. The generic helpers in
// helpers.go (ValidateAll, ToJSON, ToYAML) only ask for the parts of the
// contract they call, so they accept Model values as well as pointers.
//
// Model types are immutable values. They are safe for concurrent reads; the
// Unmarshal methods mutate their receiver and require exclusive access.
package model

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Model is the root interface combining all contracts required for chemid
// value types.
//
// Example implementation:
//
//	type Outcome struct { ... }
//
//	func (o Outcome) Validate() error  { ... }
//	func (o Outcome) TypeName() string { return "Outcome" }
//	func (o Outcome) IsZero() bool     { return o == Outcome{} }
//	func (o Outcome) Redacted() string { ... }
//	func (o Outcome) String() string   { ... }
//	// ... MarshalJSON, UnmarshalJSON, MarshalYAML, UnmarshalYAML
//
//	var _ model.Model = (*Outcome)(nil)
type Model interface {
	Validatable
	Serializable
	Loggable
	Identifiable
	ZeroCheckable
}

// Validatable defines the contract for types that validate their own state.
//
// Validate MUST return nil if and only if every invariant of the type holds.
// It MUST be fast, deterministic and free of side effects: no I/O, no
// logging, no reads of the wall clock. Callers SHOULD invoke it after
// decoding external input and before encoding output.
//
// Note that a negative validation result (a candidate that is not a CAS
// number, say) is a perfectly valid Result value. Validate only rejects
// results whose fields contradict each other, for example Success set while
// Valid is false.
type Validatable interface {
	// Validate checks that the instance satisfies all invariants. It returns
	// nil if the instance is valid, or a descriptive error otherwise.
	Validate() error
}

// Serializable defines the contract for types that round-trip through JSON
// and YAML.
//
// Marshal methods MUST call Validate first and refuse to encode an invalid
// instance. Unmarshal methods MUST validate the decoded value and return the
// validation error instead of silently accepting inconsistent data.
//
// Implementations SHOULD use the local alias pattern to avoid re-entering
// their own Marshal/Unmarshal methods:
//
//	func (o Outcome) MarshalJSON() ([]byte, error) {
//	    if err := o.Validate(); err != nil {
//	        return nil, fmt.Errorf("cannot marshal invalid %s: %w", o.TypeName(), err)
//	    }
//	    type alias Outcome
//	    return json.Marshal((alias)(o))
//	}
type Serializable interface {
	json.Marshaler
	json.Unmarshaler
	yaml.Marshaler
	yaml.Unmarshaler
}

// Loggable defines the contract for types that provide safe string
// representations.
//
// Redacted returns a form suitable for production logs. Candidate strings are
// arbitrary user input, so implementations SHOULD bound their length in the
// redacted form. String returns the full human-readable form and MAY include
// the complete input.
type Loggable interface {
	// Redacted returns a log-safe representation of the instance.
	Redacted() string

	// String returns the full human-readable representation.
	String() string
}

// Identifiable defines the contract for types that can name themselves.
//
// TypeName MUST return a constant CamelCase name without a package prefix
// (for example, "Scheme" or "Result").
type Identifiable interface {
	// TypeName returns the canonical name of this model type.
	TypeName() string
}

// ZeroCheckable defines the contract for types that can report whether they
// hold their zero value.
//
// For enum-like types the zero constant MAY itself be meaningful (for
// example, FailureNone); IsZero then reports that constant, not an error.
type ZeroCheckable interface {
	// IsZero reports whether this instance is in a zero or empty state.
	IsZero() bool
}
