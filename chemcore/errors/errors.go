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

// Package errors provides the error types shared by the chemid packages.
//
// chemid draws a hard line between two kinds of "bad input":
//
//   - A caller that violates a function's argument contract (a blank string
//     handed to a helper that requires text, a non-positive modulus, a
//     decoded value that is not a string where a candidate is expected).
//     These are reported as *ArgumentError and abort the call.
//
//   - A candidate identifier that is malformed or fails its checksum. This is
//     never an error. It is reported as a negative validation result by the
//     registry package.
//
// The remaining types are the codec and validation carriers used by the
// enum-like and model types (Scheme, Failure, Outcome, Result) when parsing,
// marshaling and unmarshaling their textual forms.
//
// # Error Types
//
//   - ArgumentError
//     Returned when an argument contract is violated. Every *ArgumentError
//     matches ErrInvalidArgument via errors.Is.
//
//   - ParseError
//     Returned when parsing a string into an enum-like type fails.
//
//   - MarshalError
//     Returned when marshaling an out-of-range enum-like value.
//
//   - UnmarshalError
//     Returned when decoding a payload into a typed value fails.
//
//   - ValidationError
//     Returned by Validate methods when a model's fields break its invariants.
//
// # Usage
//
//	total, err := digits.WeightedSum(s)
//	if errors.Is(err, chemerrors.ErrInvalidArgument) {
//	    // the caller passed something that is not a digit string
//	}
package errors

import (
	stderrors "errors"
	"strconv"
)

// ErrInvalidArgument is the sentinel matched by every *ArgumentError.
//
// Callers that only need to distinguish "called wrong" from other failures
// SHOULD test with errors.Is(err, ErrInvalidArgument); callers that need the
// details SHOULD use errors.As with *ArgumentError.
var ErrInvalidArgument = stderrors.New("chemid: invalid argument")

// ArgumentError is returned when a function is called with an argument that
// violates its contract.
//
// Func names the function that rejected the argument (for example,
// "digits.Reverse"), Arg names the parameter (for example, "s" or "inputs[2]")
// and Reason is a short human-readable explanation. Value optionally carries
// the offending value for diagnostics.
//
// # Example
//
//	func Reverse(s string) (string, error) {
//	    if strings.TrimSpace(s) == "" {
//	        return "", &errors.ArgumentError{
//	            Func:   "digits.Reverse",
//	            Arg:    "s",
//	            Reason: "must be a non-blank string",
//	        }
//	    }
//	    ...
//	}
type ArgumentError struct {
	// Func is the qualified name of the function that rejected the argument.
	Func string

	// Arg is the name of the rejected parameter, optionally with an index.
	Arg string

	// Reason describes what the contract requires.
	Reason string

	// Value optionally contains the rejected value.
	Value any
}

// Error implements the error interface for ArgumentError.
//
// The error message format is:
//
//	"chemid: invalid argument {Arg} to {Func}: {Reason}"
//
// When Arg is empty the "{Arg} " part is omitted.
func (e *ArgumentError) Error() string {
	if e.Arg == "" {
		return "chemid: invalid argument to " + e.Func + ": " + e.Reason
	}
	return "chemid: invalid argument " + e.Arg + " to " + e.Func + ": " + e.Reason
}

// Is reports whether target is ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ParseError is returned when parsing a string into a strongly typed enum-like
// value fails.
//
// Type identifies the logical type being parsed (for example, "Scheme" or
// "Failure"), and Value contains the exact string that could not be
// interpreted.
//
// # Example
//
//	scheme, err := registry.ParseScheme("isbn")
//	// err formats as: "chemid: invalid Scheme value: isbn"
type ParseError struct {
	// Type is the logical name of the type being parsed (for example, "Scheme").
	Type string

	// Value is the invalid textual representation that was provided.
	Value string
}

// Error implements the error interface for ParseError.
//
// The error message format is:
//
//	"chemid: invalid {Type} value: {Value}"
func (e *ParseError) Error() string {
	return "chemid: invalid " + e.Type + " value: " + e.Value
}

// MarshalError is returned when marshaling a typed value fails due to it being
// outside the set of valid constants.
//
// In most cases a MarshalError indicates a programming error, such as a
// numeric cast that produced a Scheme with no defined meaning.
type MarshalError struct {
	// Type is the logical name of the type being marshaled (for example, "Scheme").
	Type string

	// Value is the underlying numeric representation that could not be
	// marshaled because it does not correspond to a known constant.
	Value int
}

// Error implements the error interface for MarshalError.
//
// The error message format is:
//
//	"chemid: cannot marshal invalid {Type} value: {Value}"
func (e *MarshalError) Error() string {
	return "chemid: cannot marshal invalid " + e.Type + " value: " + strconv.Itoa(e.Value)
}

// UnmarshalError is returned when unmarshaling data into a typed value fails.
//
// Type identifies the logical type being populated, Data contains the
// original raw payload and Reason describes what went wrong.
type UnmarshalError struct {
	// Type is the logical name of the type being unmarshaled into.
	Type string

	// Data is the raw input that failed to unmarshal.
	Data []byte

	// Reason is a short, human-readable explanation of the failure.
	Reason string
}

// Error implements the error interface for UnmarshalError.
//
// The error message format is:
//
//	"chemid: cannot unmarshal {Type}: {Reason}"
//
// Data is intentionally left out of the message.
func (e *UnmarshalError) Error() string {
	return "chemid: cannot unmarshal " + e.Type + ": " + e.Reason
}

// ValidationError is returned when validation of a model type fails.
//
// Type identifies the logical name of the type being validated (for example,
// "Result"), Field optionally identifies which field failed validation,
// Reason explains the failure, and Value optionally carries the offending
// value.
//
// # Example
//
//	func (r Result) Validate() error {
//	    if r.Success && !r.Valid {
//	        return &errors.ValidationError{
//	            Type:   "Result",
//	            Field:  "Valid",
//	            Reason: "must be true when Success is true",
//	        }
//	    }
//	    return nil
//	}
type ValidationError struct {
	// Type is the logical name of the type being validated.
	Type string

	// Field is the name of the field that failed validation.
	// May be empty if the error applies to the entire type.
	Field string

	// Reason is a short, human-readable explanation of why validation failed.
	Reason string

	// Value optionally contains the invalid value.
	Value any
}

// Error implements the error interface for ValidationError.
//
// The error message format is:
//
//	"chemid: invalid {Type}.{Field}: {Reason}" (when Field is specified)
//	"chemid: invalid {Type}: {Reason}" (when Field is empty)
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return "chemid: invalid " + e.Type + "." + e.Field + ": " + e.Reason
	}
	return "chemid: invalid " + e.Type + ": " + e.Reason
}
