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

import "regexp"

const (
	// casPattern matches XX-YY-Z up to XXXXXXX-YY-Z.
	casPattern = `^\d{2,7}-\d{2}-\d{1}$`

	// ecPattern matches XXX-YYY-Z.
	ecPattern = `^\d{3}-\d{3}-\d{1}$`

	// keAnnex1Pattern matches KE-XXXXX.
	keAnnex1Pattern = `^KE-\d{5}$`

	// keAnnex2Pattern matches YYYY-X-Z up to YYYY-X-ZZZZ, where YYYY is the
	// year of introduction.
	keAnnex2Pattern = `^\d{4}-\d{1}-\d{1,4}$`
)

// Compiled shape patterns. RE2's \d matches ASCII digits only. The regexps
// are safe for concurrent use.
var (
	CASRegexp      = regexp.MustCompile(casPattern)
	ECRegexp       = regexp.MustCompile(ecPattern)
	KEAnnex1Regexp = regexp.MustCompile(keAnnex1Pattern)
	KEAnnex2Regexp = regexp.MustCompile(keAnnex2Pattern)
)

// CheckFormatCAS reports whether s has the shape of a CAS Registry Number:
// two to seven digits, two digits and one check digit, separated by hyphens.
//
// The checksum is not evaluated, so "7732-18-4" passes here and only fails
// in CheckChecksumCAS. The whole string must match; surrounding whitespace
// and non-ASCII digits are rejected. The Outcome's Scheme is always
// SchemeCAS, whether or not s matched.
func CheckFormatCAS(s string) Outcome {
	return formatOutcome(SchemeCAS, s, CASRegexp.MatchString(s))
}

// CheckFormatEC reports whether s has the shape of an EC number, XXX-YYY-Z.
// Like CheckFormatCAS it matches the whole string and ignores the check
// digit.
func CheckFormatEC(s string) Outcome {
	return formatOutcome(SchemeEC, s, ECRegexp.MatchString(s))
}

// CheckFormatKEAnnex1 reports whether s has the shape KE-XXXXX.
func CheckFormatKEAnnex1(s string) Outcome {
	return formatOutcome(SchemeKEAnnex1, s, KEAnnex1Regexp.MatchString(s))
}

// CheckFormatKEAnnex2 reports whether s has the shape YYYY-X-ZZZZ.
func CheckFormatKEAnnex2(s string) Outcome {
	return formatOutcome(SchemeKEAnnex2, s, KEAnnex2Regexp.MatchString(s))
}

// CheckFormatKE reports which KE annex, if any, s is shaped like. Annex 1 is
// tried first. The Outcome's Scheme is the matching annex, or SchemeUnknown.
//
// This only inspects the shape. Use CheckFormatKEAnnex1 or
// CheckFormatKEAnnex2 for a plain yes/no on one annex, and CheckChecksumKE
// for numeric validity.
func CheckFormatKE(s string) Outcome {
	if KEAnnex1Regexp.MatchString(s) {
		return Outcome{Success: true, Message: s + " matches KE Annex 1 numbers", Input: s, Scheme: SchemeKEAnnex1}
	}
	if KEAnnex2Regexp.MatchString(s) {
		return Outcome{Success: true, Message: s + " matches KE Annex 2 numbers", Input: s, Scheme: SchemeKEAnnex2}
	}
	return Outcome{Message: s + " did not match either Annex numbers", Input: s}
}

func formatOutcome(scheme Scheme, s string, ok bool) Outcome {
	msg := s + " is not formatted correctly"
	if ok {
		msg = s + " is formatted correctly"
	}
	return Outcome{Success: ok, Message: msg, Input: s, Scheme: scheme}
}
