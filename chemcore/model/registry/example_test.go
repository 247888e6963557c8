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

package registry_test

import (
	"fmt"
	"time"

	"dirpx.dev/chemid/chemcore/model/registry"
)

func ExampleCheckCAS() {
	for _, s := range []string{"7732-18-5", "7732-18-4", "7732185"} {
		res := registry.CheckCAS(s)
		fmt.Println(res.Success, res.Failure, res.Message)
	}

	// Output:
	// true none 7732-18-5 is formatted correctly and is valid
	// false invalid 7732-18-4 is not a valid CAS number
	// false format 7732185 is not formatted correctly
}

func ExampleCheckKEAnnex2() {
	asOf := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println(registry.CheckKEAnnex2("2022-1-1290", asOf).Success)
	fmt.Println(registry.CheckKEAnnex2("2025-1-1290", asOf).Failure)

	// Output:
	// true
	// invalid
}

func ExampleScheme_Check() {
	for _, scheme := range registry.Schemes() {
		res := scheme.Check(scheme.Example(), time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))
		fmt.Printf("%s %s %t\n", scheme, scheme.Label(), res.Success)
	}

	fmt.Println(registry.SchemeUnknown.Check("7732-18-5", time.Time{}).Message)

	// Output:
	// cas CAS Number true
	// ec EC Number true
	// ke-annex-1 KE Annex 1 true
	// ke-annex-2 KE Annex 2 true
	// No Chemical Identifiers were matched
}
