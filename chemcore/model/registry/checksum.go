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
	"strings"
	"time"
	"unicode/utf8"

	"dirpx.dev/chemid/chemcore/model/digits"
)

const (
	// KEAnnex1Length is the total length of a KE Annex 1 code, prefix included.
	KEAnnex1Length = 8

	// KEAnnex2IntroductionYear is the earliest year a KE Annex 2 code can carry.
	KEAnnex2IntroductionYear = 1991

	segmentSeparator = "-"
)

// The checksum validators below assume the input already passed the matching
// format check and do not re-check its shape. Input that is not shaped
// correctly still never produces an error: a missing segment, an empty
// segment or a non-digit simply fails the checksum.

// CheckChecksumCAS verifies the CAS check digit of s.
//
// With s split into body, middle and check digit, the digits of
// reverse(middle) + reverse(body) are weighted 1, 2, 3, ... and summed; the
// sum mod 10 must equal the check digit.
//
//	7732-18-5: 8*1 + 1*2 + 2*3 + 3*4 + 7*5 + 7*6 = 105, 105 mod 10 = 5
func CheckChecksumCAS(s string) Outcome {
	ok := casChecksum(s)
	msg := s + " is not a valid CAS number"
	if ok {
		msg = s + " is a valid CAS number"
	}
	return Outcome{Success: ok, Message: msg, Input: s, Scheme: SchemeCAS}
}

func casChecksum(s string) bool {
	parts := strings.Split(s, segmentSeparator)
	if len(parts) < 3 {
		return false
	}
	check, ok := digits.LeadingInt(parts[2])
	if !ok {
		return false
	}
	middle, err := digits.Reverse(parts[1])
	if err != nil {
		return false
	}
	body, err := digits.Reverse(parts[0])
	if err != nil {
		return false
	}
	total, err := digits.WeightedSum(middle + body)
	if err != nil {
		return false
	}
	valid, err := digits.ModuloMatches(total, digits.ModulusCAS, check)
	return err == nil && valid
}

// CheckChecksumEC verifies the EC check digit of s.
//
// The six body digits are weighted 1..6 and summed; the sum mod 11 must equal
// the check digit. A remainder of 10 is written as check digit 1.
//
//	200-003-9: 2*1 + 3*6 = 20, 20 mod 11 = 9
func CheckChecksumEC(s string) Outcome {
	ok := ecChecksum(s)
	msg := s + " is not a valid EC number"
	if ok {
		msg = s + " is a valid EC number"
	}
	return Outcome{Success: ok, Message: msg, Input: s, Scheme: SchemeEC}
}

func ecChecksum(s string) bool {
	parts := strings.Split(s, segmentSeparator)
	if len(parts) < 3 {
		return false
	}
	check, ok := digits.LeadingInt(parts[2])
	if !ok {
		return false
	}
	total, err := digits.WeightedSum(parts[0] + parts[1])
	if err != nil {
		return false
	}
	valid, err := digits.ModuloMatches(total, digits.ModulusEC, check)
	if err != nil {
		return false
	}
	return valid || digits.IsECException(total, digits.ModulusEC, check)
}

// CheckChecksumKEAnnex1 validates a KE Annex 1 code. The scheme has no check
// digit; the only numeric invariant is that exactly five digits follow the
// prefix, so the whole code is KEAnnex1Length characters long.
func CheckChecksumKEAnnex1(s string) Outcome {
	ok := utf8.RuneCountInString(s) == KEAnnex1Length
	msg := s + " is not a valid Annex 1 KE number"
	if ok {
		msg = s + " is a valid Annex 1 KE number"
	}
	return Outcome{Success: ok, Message: msg, Input: s, Scheme: SchemeKEAnnex1}
}

// CheckChecksumKEAnnex2 validates a KE Annex 2 code: its leading year must
// lie between KEAnnex2IntroductionYear and the year of asOf, inclusive.
//
// asOf is the reference date. Callers wanting "today" pass time.Now(); tests
// pin it.
func CheckChecksumKEAnnex2(s string, asOf time.Time) Outcome {
	ok := keAnnex2Year(s, asOf)
	msg := s + " is not a valid Annex 2 KE number"
	if ok {
		msg = s + " is a valid Annex 2 KE number"
	}
	return Outcome{Success: ok, Message: msg, Input: s, Scheme: SchemeKEAnnex2}
}

func keAnnex2Year(s string, asOf time.Time) bool {
	first, _, _ := strings.Cut(s, segmentSeparator)
	year, ok := digits.LeadingInt(first)
	if !ok {
		return false
	}
	return year >= KEAnnex2IntroductionYear && year <= asOf.Year()
}

// CheckChecksumKE validates s against the Annex 1 rule, then the Annex 2
// rule. The Outcome's Scheme is the annex that accepted s, or SchemeUnknown.
//
// Like the per-annex validators it does not look at the shape, so any
// eight-character string passes as Annex 1.
func CheckChecksumKE(s string, asOf time.Time) Outcome {
	if CheckChecksumKEAnnex1(s).Success {
		return Outcome{Success: true, Message: s + " is a valid Annex 1 KE number", Input: s, Scheme: SchemeKEAnnex1}
	}
	if CheckChecksumKEAnnex2(s, asOf).Success {
		return Outcome{Success: true, Message: s + " is a valid Annex 2 KE number", Input: s, Scheme: SchemeKEAnnex2}
	}
	return Outcome{Message: s + " is not a valid KE number for Annex 1 or Annex 2", Input: s}
}
