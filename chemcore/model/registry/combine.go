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

import "time"

// CheckCAS validates s as a CAS Registry Number and returns the combined
// Result.
//
// The format check runs first. When s is not shaped XX-YY-Z up to
// XXXXXXX-YY-Z the Result carries FailureFormat and the checksum is never
// evaluated. When the shape matches, the mod-10 check digit is verified; a
// mismatch yields FailureInvalid with Formatted set, which the dispatcher
// treats as a close match. Only when both stages pass is Success true:
//
//	CheckCAS("7732-18-5").Success   // true
//	CheckCAS("7732-18-4").Failure   // FailureInvalid
//	CheckCAS("7732185").Failure     // FailureFormat
//
// CAS validation does not depend on a reference date.
func CheckCAS(s string) Result {
	return combine(SchemeCAS, s, time.Time{})
}

// CheckEC validates s as an EC number and returns the combined Result.
//
// The stages and failure kinds are the same as for CheckCAS. The shape is
// XXX-YYY-Z and the check digit is the weighted sum of the six body digits
// modulo 11, with a remainder of 10 written as 1.
func CheckEC(s string) Result {
	return combine(SchemeEC, s, time.Time{})
}

// CheckKEAnnex1 validates s as a KE Annex 1 code ("KE-" and five digits).
//
// KE Annex 1 codes carry no check digit, so once the shape matches the
// second stage only confirms the length. In practice a KE Annex 1 Result
// either succeeds or fails with FailureFormat.
func CheckKEAnnex1(s string) Result {
	return combine(SchemeKEAnnex1, s, time.Time{})
}

// CheckKEAnnex2 validates s as a KE Annex 2 code (YYYY-X-ZZZZ) as of the
// reference date asOf.
//
// After the shape matches, the leading year must lie between
// KEAnnex2IntroductionYear and asOf.Year(), inclusive. A code from the future
// relative to asOf is shaped correctly but invalid, so it fails with
// FailureInvalid. Callers wanting "today" pass time.Now(); the result for a
// given s changes only when asOf crosses a year boundary.
//
//	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	CheckKEAnnex2("2022-1-1290", asOf).Success // true
//	CheckKEAnnex2("2025-1-1290", asOf).Failure // FailureInvalid
func CheckKEAnnex2(s string, asOf time.Time) Result {
	return combine(SchemeKEAnnex2, s, asOf)
}

// combine is the shared format-then-checksum pipeline. The checksum is only
// evaluated once the shape matched, so a Result with FailureFormat always
// carries the format checker's message and one with FailureInvalid the
// checksum validator's.
func combine(scheme Scheme, s string, asOf time.Time) Result {
	res := Result{
		Input:        s,
		Scheme:       scheme,
		NumberFormat: scheme.NumberFormat(),
	}

	format := scheme.Format(s)
	if !format.Success {
		res.Message = format.Message
		res.Failure = FailureFormat
		return res
	}
	res.Formatted = true

	checksum := scheme.Checksum(s, asOf)
	if !checksum.Success {
		res.Message = checksum.Message
		res.Failure = FailureInvalid
		return res
	}

	res.Success = true
	res.Valid = true
	res.Failure = FailureNone
	res.Message = s + " is formatted correctly and is valid"
	return res
}
