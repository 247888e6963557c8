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

// Package registry validates chemical registry identifiers.
//
// Four numbering schemes are supported, each modeled as a Scheme value:
//
//	Scheme          Shape                    Rule
//	SchemeCAS       XX-YY-Z .. XXXXXXX-YY-Z  weighted digit sum mod 10
//	SchemeEC        XXX-YYY-Z                weighted digit sum mod 11
//	SchemeKEAnnex1  KE-XXXXX                 eight characters long
//	SchemeKEAnnex2  YYYY-X-ZZZZ              year between 1991 and asOf
//
// Checks come in three layers. CheckFormat* functions only match the shape
// and CheckChecksum* functions only evaluate the numeric rule; both return an
// Outcome. Check* functions (and Scheme.Check) run both and return a Result
// whose Failure tells a shape mismatch from a bad checksum.
//
// IdentifyOne and IdentifyMany try every scheme and pick the best Result:
//
//	res := registry.IdentifyOne("7732-18-5", time.Now())
//	// res.Scheme == registry.SchemeCAS, res.Success == true
//
// A malformed or checksum-invalid identifier is never an error. Errors are
// reserved for contract violations at the dynamic boundary (IdentifyValue,
// IdentifyValues), which accept decoded JSON or YAML values.
//
// Nothing in this package reads the clock. The one date-dependent rule, the
// KE Annex 2 year bound, takes its reference date as an argument.
package registry
