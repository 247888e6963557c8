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

// Package digits implements the positional arithmetic behind registry check
// digits.
//
// Both CAS Registry Numbers and EC numbers protect their body with a weighted
// digit sum: the i-th digit (1-based) is multiplied by i, the products are
// summed, and the remainder of the sum modulo a scheme-specific divisor must
// equal the trailing check digit. CAS numbers weight the body read right to
// left, which is why Reverse exists here.
//
// Worked example, CAS 7732-18-5:
//
//	body reversed  = "81" + "2377" = "812377"
//	weighted sum   = 8*1 + 1*2 + 2*3 + 3*4 + 7*5 + 7*6 = 105
//	105 mod 10     = 5 == check digit
package digits

import (
	"strconv"
	"strings"

	"dirpx.dev/chemid/chemcore/errors"
)

const (
	// ModulusCAS is the divisor of the CAS Registry Number checksum.
	ModulusCAS = 10

	// ModulusEC is the divisor of the EC number checksum.
	ModulusEC = 11

	// ECExceptionRemainder is the EC remainder that cannot be written as a
	// single check digit.
	ECExceptionRemainder = 10

	// ECExceptionCheckDigit is the check digit EC numbers use in place of a
	// remainder of ECExceptionRemainder.
	ECExceptionCheckDigit = 1
)

// Reverse returns the characters of s in reverse order.
//
// Reversal is rune-wise, so multi-byte characters survive intact. It returns
// an *errors.ArgumentError when s is empty or consists only of whitespace.
func Reverse(s string) (string, error) {
	if strings.TrimSpace(s) == "" {
		return "", &errors.ArgumentError{
			Func:   "digits.Reverse",
			Arg:    "s",
			Reason: "must be a non-blank string",
			Value:  s,
		}
	}

	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes), nil
}

// WeightedSum returns the sum of digit[i] * (i+1) over the decimal digits of
// s, so the first digit has weight 1, the second weight 2, and so on.
//
// Only ASCII digits are accepted. Any other character yields an
// *errors.ArgumentError naming its position; the registry checksums treat
// that as a failed checksum, not as a caller error. The empty string sums to
// zero.
func WeightedSum(s string) (int, error) {
	total := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, &errors.ArgumentError{
				Func:   "digits.WeightedSum",
				Arg:    "s",
				Reason: "non-digit character at position " + strconv.Itoa(i),
				Value:  s,
			}
		}
		total += int(c-'0') * (i + 1)
	}
	return total, nil
}

// ModuloMatches reports whether total mod modulus equals check.
//
// It returns an *errors.ArgumentError when modulus is not positive.
func ModuloMatches(total, modulus, check int) (bool, error) {
	if modulus <= 0 {
		return false, &errors.ArgumentError{
			Func:   "digits.ModuloMatches",
			Arg:    "modulus",
			Reason: "must be positive",
			Value:  modulus,
		}
	}
	return total%modulus == check, nil
}

// IsECException reports whether total mod modulus is ECExceptionRemainder
// and check is ECExceptionCheckDigit.
//
// A remainder of 10 cannot be written as one digit, so the EC standard writes
// it as 1. Unlike ModuloMatches this helper performs no argument validation;
// a non-positive modulus simply reports false.
func IsECException(total, modulus, check int) bool {
	if modulus <= 0 {
		return false
	}
	return total%modulus == ECExceptionRemainder && check == ECExceptionCheckDigit
}

// LeadingInt parses the leading run of ASCII digits in s.
//
// Parsing stops at the first non-digit, so "2017" and "2017abc" both yield
// 2017. ok is false when s does not start with a digit. Runs long enough to
// overflow int are rejected.
func LeadingInt(s string) (n int, ok bool) {
	const maxDigits = 18

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		if i == maxDigits {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, i > 0
}
