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

package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"dirpx.dev/rxmerr"
	"gopkg.in/yaml.v3"
)

// Checked is the part of the Model contract the helpers rely on. Model
// values satisfy it directly, without taking their address, and so do
// report types that only aggregate models and never need to be decoded.
type Checked interface {
	Validatable
	Identifiable
}

// ValidateAll validates every model in the slice and returns a combined error
// describing all failures, or nil when every model is valid.
//
// Each failure is wrapped with the model's index and type name, for example
// "model[3] (Result): chemid: invalid Result.Valid: ...". The whole slice is
// always processed; validation does not stop at the first failure. Empty and
// nil slices are valid.
//
// Example:
//
//	results := registry.IdentifyMany(inputs, asOf)
//	if err := model.ValidateAll(results); err != nil {
//	    return fmt.Errorf("refusing to emit inconsistent results: %w", err)
//	}
func ValidateAll[T Checked](models []T) error {
	c := rxmerr.NewCollector()

	for i, m := range models {
		if err := m.Validate(); err != nil {
			c.Append(fmt.Errorf("model[%d] (%s): %w", i, m.TypeName(), err))
		}
	}

	return c.Err()
}

// ToJSON validates m and encodes it as indented JSON.
//
// Validation runs before any encoding, so an inconsistent value never
// reaches the output; the error names the model's type. Objects are indented
// with two spaces and the document ends with a newline, which is the form the
// chemid CLI writes to stdout.
//
// Example:
//
//	data, err := model.ToJSON(result)
//	if err != nil {
//	    return err
//	}
//	os.Stdout.Write(data)
func ToJSON[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("cannot marshal %s: %w", m.TypeName(), err)
	}
	return buf.Bytes(), nil
}

// ToYAML validates m and encodes it as a YAML document indented with two
// spaces.
//
// Like ToJSON it refuses to encode a model whose Validate fails. Fields whose
// MarshalYAML returns nil, such as a Failure of FailureNone, are written as
// null.
func ToYAML[T Checked](m T) ([]byte, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("cannot marshal invalid %s: %w", m.TypeName(), err)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("cannot marshal %s: %w", m.TypeName(), err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("cannot marshal %s: %w", m.TypeName(), err)
	}
	return buf.Bytes(), nil
}
