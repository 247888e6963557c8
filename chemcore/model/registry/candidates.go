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
	"fmt"
	"strconv"
	"strings"
	"time"

	"dirpx.dev/chemid/chemcore/errors"
)

// CandidateFromValue returns v as a candidate string. Any value that is not
// a string, nil included, yields an *errors.ArgumentError.
func CandidateFromValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &errors.ArgumentError{
			Func:   "registry.CandidateFromValue",
			Arg:    "v",
			Reason: "must be a string, got " + typeOf(v),
			Value:  v,
		}
	}
	return s, nil
}

// CandidatesFromValue returns v as a list of candidate strings.
//
// v must be a []string or a []any holding only strings; this is the shape
// JSON and YAML decoders produce for a list. For a []any with non-string
// elements the error names every offending index. No partial list is
// returned on error.
func CandidatesFromValue(v any) ([]string, error) {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out, nil
	case []any:
		out := make([]string, 0, len(list))
		var bad []string
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				bad = append(bad, "v["+strconv.Itoa(i)+"] ("+typeOf(item)+")")
				continue
			}
			out = append(out, s)
		}
		if len(bad) > 0 {
			return nil, &errors.ArgumentError{
				Func:   "registry.CandidatesFromValue",
				Arg:    "v",
				Reason: "elements must be strings: " + strings.Join(bad, ", "),
				Value:  v,
			}
		}
		return out, nil
	default:
		return nil, &errors.ArgumentError{
			Func:   "registry.CandidatesFromValue",
			Arg:    "v",
			Reason: "must be a list of strings, got " + typeOf(v),
			Value:  v,
		}
	}
}

// IdentifyValue is IdentifyOne for a dynamically typed candidate.
func IdentifyValue(v any, asOf time.Time) (Result, error) {
	s, err := CandidateFromValue(v)
	if err != nil {
		return Result{}, err
	}
	return IdentifyOne(s, asOf), nil
}

// IdentifyValues is IdentifyMany for a dynamically typed list.
func IdentifyValues(v any, asOf time.Time) ([]Result, error) {
	inputs, err := CandidatesFromValue(v)
	if err != nil {
		return nil, err
	}
	return IdentifyMany(inputs, asOf), nil
}

func typeOf(v any) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
