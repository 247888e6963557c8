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

// NoMatchMessage is the message of the dispatcher's fallback Result.
const NoMatchMessage = "No Chemical Identifiers were matched"

// Identifier classifies candidates against an ordered list of schemes using
// a fixed reference date.
//
// The zero value tries no schemes and returns the no-match result for every
// input; use NewIdentifier. An Identifier is immutable and safe for
// concurrent use.
type Identifier struct {
	asOf    time.Time
	schemes []Scheme
}

// NewIdentifier returns an Identifier that tries schemes in the given order.
// With no schemes it tries every known scheme in the order of Schemes().
// SchemeUnknown, out-of-range values and duplicates are skipped.
func NewIdentifier(asOf time.Time, schemes ...Scheme) *Identifier {
	if len(schemes) == 0 {
		schemes = Schemes()
	}
	seen := make(map[Scheme]bool, len(schemes))
	kept := make([]Scheme, 0, len(schemes))
	for _, s := range schemes {
		if !s.Known() || seen[s] {
			continue
		}
		seen[s] = true
		kept = append(kept, s)
	}
	return &Identifier{asOf: asOf, schemes: kept}
}

// AsOf returns the reference date used for date-bounded schemes.
func (id *Identifier) AsOf() time.Time {
	return id.asOf
}

// Schemes returns a copy of the schemes id tries, in order.
func (id *Identifier) Schemes() []Scheme {
	out := make([]Scheme, len(id.schemes))
	copy(out, id.schemes)
	return out
}

// Identify classifies s.
//
// Every scheme is checked. The first successful Result in scheme order wins.
// Failing that, the first Result whose shape matched but whose checksum did
// not (a close match) is returned, so callers learn which scheme s almost
// belongs to. Otherwise the no-match Result is returned.
//
// The four built-in shapes are pairwise disjoint, so at most one scheme can
// match and the order only matters for custom orderings that the shapes
// themselves never disambiguate.
func (id *Identifier) Identify(s string) Result {
	var nearest *Result
	for _, scheme := range id.schemes {
		res := scheme.Check(s, id.asOf)
		if res.Success {
			return res
		}
		if nearest == nil && res.CloseMatch() {
			nearest = &res
		}
	}
	if nearest != nil {
		return *nearest
	}
	return noMatch(s)
}

// IdentifyAll classifies every input, preserving order. A nil or empty slice
// yields an empty, non-nil slice.
func (id *Identifier) IdentifyAll(inputs []string) []Result {
	out := make([]Result, 0, len(inputs))
	for _, s := range inputs {
		out = append(out, id.Identify(s))
	}
	return out
}

// IdentifyOne classifies s against every known scheme.
// It is shorthand for NewIdentifier(asOf).Identify(s).
func IdentifyOne(s string, asOf time.Time) Result {
	return NewIdentifier(asOf).Identify(s)
}

// IdentifyMany classifies each input against every known scheme, one Result
// per input in input order.
func IdentifyMany(inputs []string, asOf time.Time) []Result {
	return NewIdentifier(asOf).IdentifyAll(inputs)
}

func noMatch(s string) Result {
	return Result{
		Message: NoMatchMessage,
		Input:   s,
		Failure: FailureFormat,
	}
}
